package storage

import (
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

// RecordReader reads the extraction artifact
type RecordReader interface {
	// Records returns the raw counts of every document, by id.
	Records() ([]corpus.Record, error)
}

// RecordWriter persists the extraction artifact, replacing any previous one
type RecordWriter interface {
	WriteRecords(records []corpus.Record) error
}

// RateReader reads the normalization artifacts
type RateReader interface {
	// Rates returns the normalized rates of every document, by id.
	Rates() ([]stat.DocRate, error)

	// Aggregates returns the group and author aggregates, without samples.
	Aggregates() ([]stat.Aggregate, error)
}

// RateWriter persists the normalization artifacts
type RateWriter interface {
	WriteRates(docs []stat.DocRate) error
	WriteAggregates(aggs []stat.Aggregate) error
}

// ComparisonReader reads the comparison artifact
type ComparisonReader interface {
	Comparison() ([]compare.Row, error)
}

// ComparisonWriter persists the comparison artifact
type ComparisonWriter interface {
	WriteComparison(rows []compare.Row) error
}

// Repository holds the artifacts of all pipeline stages
type Repository interface {
	RecordReader
	RecordWriter
	RateReader
	RateWriter
	ComparisonReader
	ComparisonWriter
}
