package redigo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

// DefaultPrefix namespaces the keys of the artifacts.
const DefaultPrefix = "adpos"

// Artifact keys, below the prefix
const (
	CountsKey     = "counts"
	RatesKey      = "rates"
	AggregatesKey = "aggregates"
	ComparisonKey = "comparison"
)

// IsURL reports whether path names a Redis server.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "redis://") || strings.HasPrefix(path, "rediss://")
}

// NewPool returns a pool of connections to the server at url, for example
// redis://localhost:6379/0.
func NewPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}
}

// Store keeps each artifact as one JSON value.
type Store struct {
	pool   *redis.Pool
	prefix string
}

var _ storage.Repository = (*Store)(nil)

// NewStore checks that the server answers.
func NewStore(pool *redis.Pool, prefix string) (*Store, error) {
	conn := pool.Get()
	defer conn.Close()

	if _, err := conn.Do("PING"); err != nil {
		return nil, fmt.Errorf("redis not reachable: %w", err)
	}

	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{pool: pool, prefix: prefix}, nil
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}

func (s *Store) Records() ([]corpus.Record, error) {
	var records []corpus.Record
	err := s.get(CountsKey, "extract", &records)
	return records, err
}

func (s *Store) WriteRecords(records []corpus.Record) error {
	return s.set(CountsKey, records)
}

func (s *Store) Rates() ([]stat.DocRate, error) {
	var docs []stat.DocRate
	err := s.get(RatesKey, "normalize", &docs)
	return docs, err
}

func (s *Store) WriteRates(docs []stat.DocRate) error {
	return s.set(RatesKey, docs)
}

func (s *Store) Aggregates() ([]stat.Aggregate, error) {
	var aggs []stat.Aggregate
	err := s.get(AggregatesKey, "normalize", &aggs)
	return aggs, err
}

func (s *Store) WriteAggregates(aggs []stat.Aggregate) error {
	return s.set(AggregatesKey, aggs)
}

func (s *Store) Comparison() ([]compare.Row, error) {
	var rows []compare.Row
	err := s.get(ComparisonKey, "compare", &rows)
	return rows, err
}

func (s *Store) WriteComparison(rows []compare.Row) error {
	return s.set(ComparisonKey, rows)
}

// get decodes the value of name into v. step names the command that
// writes it.
func (s *Store) get(name, step string, v interface{}) error {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", s.key(name)))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return fmt.Errorf("key %s does not exist, run adpos %s first", s.key(name), step)
		}
		return fmt.Errorf("redis GET %s: %w", s.key(name), err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON decoding error in %s: %w", s.key(name), err)
	}
	return nil
}

func (s *Store) set(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	conn := s.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", s.key(name), data); err != nil {
		return fmt.Errorf("redis SET %s: %w", s.key(name), err)
	}
	return nil
}
