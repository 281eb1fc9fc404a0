package zombiezen

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "adpos.db"))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	s, err := NewStore(pool)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func testRecords() []corpus.Record {
	return []corpus.Record{
		{
			Id: 0, Author: "Ernest Hemingway", Title: "In Our Time", Year: 1925,
			Group: corpus.Hemingway, Path: "hemingway/time.txt", WordCount: 400, TokenCount: 470,
			Counts: adposition.Counts{adposition.Across: 2, adposition.Through: 3, adposition.Along: 1, adposition.Past: 0, adposition.Around: 4, adposition.Beyond: 0},
		},
		{
			Id: 1, Author: "Sherwood Anderson", Title: "Winesburg, Ohio", Year: 1919,
			Group: corpus.Contemporary, Path: "comparables/winesburg.txt", WordCount: 600, TokenCount: 650,
			Counts: adposition.Counts{adposition.Across: 0, adposition.Through: 2, adposition.Along: 5, adposition.Past: 1, adposition.Around: 1, adposition.Beyond: 2},
		},
	}
}

func TestRecords(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Records(); err == nil || !strings.Contains(err.Error(), "adpos extract") {
		t.Fatalf("expected hint to run extract, got %v", err)
	}

	in := testRecords()
	if err := s.WriteRecords(in); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}
	// a second write replaces the first
	if err := s.WriteRecords(in); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	out, err := s.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestRatesAndAggregates(t *testing.T) {
	s := newTestStore(t)

	h := stat.NewHandler()
	if err := h.Aggregate(testRecords()); err != nil {
		t.Fatal(err)
	}
	aggs, err := h.Get()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteRecords(testRecords()); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteRates(h.Docs()); err != nil {
		t.Fatalf("WriteRates: %v", err)
	}
	if err := s.WriteAggregates(aggs); err != nil {
		t.Fatalf("WriteAggregates: %v", err)
	}

	docs, err := s.Rates()
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if !reflect.DeepEqual(docs, h.Docs()) {
		t.Errorf("expected %+v, got %+v", h.Docs(), docs)
	}

	stored, err := s.Aggregates()
	if err != nil {
		t.Fatalf("Aggregates: %v", err)
	}
	if len(stored) != len(aggs) {
		t.Fatalf("expected %d aggregates, got %d", len(aggs), len(stored))
	}
	for i := range aggs {
		want := aggs[i]
		want.Samples = nil
		if !reflect.DeepEqual(want, stored[i]) {
			t.Errorf("aggregate %d: expected %+v, got %+v", i, want, stored[i])
		}
	}
}

func TestAggregatesSameAuthorInBothGroups(t *testing.T) {
	s := newTestStore(t)

	h := stat.NewHandler()
	err := h.Aggregate([]corpus.Record{
		{Id: 0, Author: corpus.UnknownAuthor, Title: "a", Group: corpus.Hemingway, Path: "a.txt", WordCount: 100,
			Counts: adposition.Counts{adposition.Across: 1}},
		{Id: 1, Author: corpus.UnknownAuthor, Title: "b", Group: corpus.Contemporary, Path: "b.txt", WordCount: 100,
			Counts: adposition.Counts{adposition.Past: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	aggs, err := h.Get()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteAggregates(aggs); err != nil {
		t.Fatalf("WriteAggregates: %v", err)
	}

	stored, err := s.Aggregates()
	if err != nil {
		t.Fatalf("Aggregates: %v", err)
	}
	if len(stored) != 4 {
		t.Fatalf("expected 2 groups and 2 authors, got %d aggregates", len(stored))
	}
	if _, ok := stat.Find(stored, stat.KindAuthor, corpus.Contemporary, corpus.UnknownAuthor); !ok {
		t.Errorf("expected the contemporary %s aggregate", corpus.UnknownAuthor)
	}
}

func TestComparisonNulls(t *testing.T) {
	s := newTestStore(t)

	ratio, p := 2.5, 0.2
	in := []compare.Row{
		{Adposition: adposition.Across, Kind: stat.KindGroup, A: "hemingway", B: "contemporary", RateA: 5, RateB: 2, Difference: 3, Ratio: &ratio, Level: compare.LevelHigh, PValue: &p},
		{Adposition: adposition.Beyond, Kind: stat.KindAuthor, A: "Sherwood Anderson", B: "hemingway", RateA: 1, Difference: 1, Level: compare.LevelUndefined, Significant: true},
	}

	if err := s.WriteComparison(in); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}

	out, err := s.Comparison()
	if err != nil {
		t.Fatalf("Comparison: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("expected %+v, got %+v", in, out)
	}
	if out[1].Ratio != nil || out[1].PValue != nil {
		t.Errorf("expected NULL ratio and p-value, got %+v", out[1])
	}
}
