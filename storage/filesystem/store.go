package filesystem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

// Artifact file names inside the data directory
const (
	CountsFile     = "counts.csv"
	RatesFile      = "rates.csv"
	AggregatesFile = "aggregates.csv"
	ComparisonFile = "comparison.csv"
)

// Store keeps each artifact as a CSV file of one directory.
type Store struct {
	dir string
}

var _ storage.Repository = (*Store)(nil)

// NewStore creates the data directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Records() ([]corpus.Record, error) {
	rows, err := s.read(CountsFile, "extract")
	if err != nil {
		return nil, err
	}

	records := make([]corpus.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", CountsFile, row.line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) WriteRecords(records []corpus.Record) error {
	rows := [][]string{recordHeader()}
	for _, rec := range records {
		rows = append(rows, recordFields(rec))
	}
	return s.write(CountsFile, rows)
}

func (s *Store) Rates() ([]stat.DocRate, error) {
	rows, err := s.read(RatesFile, "normalize")
	if err != nil {
		return nil, err
	}

	docs := make([]stat.DocRate, 0, len(rows))
	for _, row := range rows {
		d, err := row.docRate()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", RatesFile, row.line, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (s *Store) WriteRates(docs []stat.DocRate) error {
	rows := [][]string{rateHeader()}
	for _, d := range docs {
		rows = append(rows, rateFieldsOf(d))
	}
	return s.write(RatesFile, rows)
}

func (s *Store) Aggregates() ([]stat.Aggregate, error) {
	rows, err := s.read(AggregatesFile, "normalize")
	if err != nil {
		return nil, err
	}

	aggs := make([]stat.Aggregate, 0, len(rows))
	for _, row := range rows {
		agg, err := row.aggregate()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", AggregatesFile, row.line, err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, nil
}

func (s *Store) WriteAggregates(aggs []stat.Aggregate) error {
	rows := [][]string{aggregateHeader()}
	for _, agg := range aggs {
		rows = append(rows, aggregateFields(agg))
	}
	return s.write(AggregatesFile, rows)
}

func (s *Store) Comparison() ([]compare.Row, error) {
	rows, err := s.read(ComparisonFile, "compare")
	if err != nil {
		return nil, err
	}

	out := make([]compare.Row, 0, len(rows))
	for _, row := range rows {
		r, err := row.comparison()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", ComparisonFile, row.line, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) WriteComparison(rows []compare.Row) error {
	out := [][]string{comparisonHeader()}
	for _, r := range rows {
		out = append(out, comparisonFields(r))
	}
	return s.write(ComparisonFile, out)
}

// read returns the data rows of name, keyed by the header. step names the
// command that writes the file.
func (s *Store) read(name, step string) ([]row, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s does not exist, run adpos %s first", path, step)
		}
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV decoding error in %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s has no header", path)
	}

	header := map[string]int{}
	for i, h := range lines[0] {
		header[h] = i
	}

	rows := make([]row, 0, len(lines)-1)
	for i, fields := range lines[1:] {
		rows = append(rows, row{header: header, fields: fields, line: i + 2})
	}
	return rows, nil
}

// write replaces name atomically.
func (s *Store) write(name string, rows [][]string) error {
	path := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("IO error: %w", err)
	}

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}
