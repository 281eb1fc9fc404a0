package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func record(author string, g corpus.Group, words int, c adposition.Counts) corpus.Record {
	return corpus.Record{Author: author, Title: author + " work", Group: g, WordCount: words, Counts: c}
}

func TestNormalizeScenario(t *testing.T) {
	r, err := Normalize(adposition.Counts{adposition.Around: 2}, 3)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if !near(r[adposition.Around], 6666.666667) {
		t.Errorf("expected 6666.67, got %v", r[adposition.Around])
	}
	for _, a := range adposition.All() {
		if a != adposition.Around && r[a] != 0 {
			t.Errorf("%s: expected 0, got %v", a, r[a])
		}
	}
}

func TestNormalizeZeroWords(t *testing.T) {
	_, err := Normalize(adposition.NewCounts(), 0)
	if !errors.Is(err, corpus.ErrZeroWordCount) {
		t.Fatalf("expected ErrZeroWordCount, got %v", err)
	}

	_, err = NormalizeRecord(corpus.Record{Title: "Empty", Path: "empty.txt"})
	var de *corpus.DataError
	if !errors.As(err, &de) || !errors.Is(err, corpus.ErrZeroWordCount) {
		t.Fatalf("expected ZeroWordCount DataError, got %v", err)
	}
	if de.Doc == "" {
		t.Errorf("expected the document to be named")
	}
}

func TestNormalizeScaleInvariant(t *testing.T) {
	c := adposition.Counts{adposition.Across: 3, adposition.Through: 7}
	once, err := Normalize(c, 1234)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Normalize(c.Add(c), 2468)
	if err != nil {
		t.Fatal(err)
	}

	for _, a := range adposition.All() {
		if math.Abs(once[a]-twice[a]) > eps {
			t.Errorf("%s: %v != %v", a, once[a], twice[a])
		}
	}
}

func TestPoolSumsBeforeNormalizing(t *testing.T) {
	h := NewHandler()
	err := h.Aggregate([]corpus.Record{
		record("A", corpus.Hemingway, 100, adposition.Counts{adposition.Past: 10}),
		record("B", corpus.Hemingway, 900, adposition.Counts{adposition.Past: 0}),
	})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	agg, err := h.Group(corpus.Hemingway)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}

	// (10 + 0) / (100 + 900) * 10000 = 100, the mean of the document
	// rates would be (1000 + 0) / 2 = 500
	if !near(agg.Rates[adposition.Past], 100) {
		t.Errorf("expected pooled rate 100, got %v", agg.Rates[adposition.Past])
	}
	if agg.NumDocs != 2 || agg.TotalWords != 1000 || agg.Counts[adposition.Past] != 10 {
		t.Errorf("unexpected aggregate %+v", agg)
	}

	s := agg.Summary(adposition.Past)
	if !near(s.Mean, 500) || !near(s.Min, 0) || !near(s.Max, 1000) {
		t.Errorf("unexpected summary %+v", s)
	}
	if !near(s.StdDev, math.Sqrt(2)*500) {
		t.Errorf("unexpected standard deviation %v", s.StdDev)
	}
}

func TestSummarySingleDocument(t *testing.T) {
	agg, err := Pool("solo", KindAuthor, corpus.Contemporary, []DocRate{
		{Record: record("solo", corpus.Contemporary, 10, adposition.Counts{adposition.Beyond: 1}), Rates: adposition.Rates{adposition.Beyond: 1000}},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := agg.Summary(adposition.Beyond)
	if s.StdDev != 0 || s.Mean != 1000 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestEmptyGroup(t *testing.T) {
	h := NewHandler()
	if err := h.Add(record("A", corpus.Hemingway, 10, adposition.NewCounts())); err != nil {
		t.Fatal(err)
	}

	_, err := h.Get()
	if !errors.Is(err, corpus.ErrEmptyCorpusGroup) {
		t.Fatalf("expected ErrEmptyCorpusGroup, got %v", err)
	}
}

func TestHandlerGet(t *testing.T) {
	h := NewHandler()
	err := h.Aggregate([]corpus.Record{
		record("Steinbeck", corpus.Contemporary, 50, adposition.Counts{adposition.Along: 1}),
		record("Hemingway", corpus.Hemingway, 100, adposition.Counts{adposition.Along: 2}),
		record("Faulkner", corpus.Contemporary, 50, adposition.Counts{adposition.Along: 3}),
		record("Hemingway", corpus.Hemingway, 100, adposition.Counts{adposition.Along: 4}),
	})
	if err != nil {
		t.Fatal(err)
	}

	aggs, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := []struct {
		name string
		kind Kind
		docs int
	}{
		{"hemingway", KindGroup, 2},
		{"contemporary", KindGroup, 2},
		{"Hemingway", KindAuthor, 2},
		{"Faulkner", KindAuthor, 1},
		{"Steinbeck", KindAuthor, 1},
	}

	if len(aggs) != len(want) {
		t.Fatalf("expected %d aggregates, got %d", len(want), len(aggs))
	}
	for i, w := range want {
		if aggs[i].Name != w.name || aggs[i].Kind != w.kind || aggs[i].NumDocs != w.docs {
			t.Errorf("aggregate %d: expected %+v, got %s %s %d", i, w, aggs[i].Name, aggs[i].Kind, aggs[i].NumDocs)
		}
	}

	if !near(aggs[1].Rates[adposition.Along], 400) {
		t.Errorf("expected contemporary along rate 400, got %v", aggs[1].Rates[adposition.Along])
	}
}

func TestWithSamples(t *testing.T) {
	h := NewHandler()
	err := h.Aggregate([]corpus.Record{
		record("Hemingway", corpus.Hemingway, 100, adposition.Counts{adposition.Along: 2}),
		record("Faulkner", corpus.Contemporary, 50, adposition.Counts{adposition.Along: 3}),
		record("Steinbeck", corpus.Contemporary, 50, adposition.Counts{adposition.Along: 1}),
	})
	if err != nil {
		t.Fatal(err)
	}
	aggs, err := h.Get()
	if err != nil {
		t.Fatal(err)
	}

	stripped := make([]Aggregate, len(aggs))
	for i, a := range aggs {
		a.Samples = nil
		stripped[i] = a
	}

	filled := WithSamples(stripped, h.Docs())
	for i := range filled {
		if len(filled[i].Samples) != len(aggs[i].Samples) {
			t.Errorf("%s: expected %d samples, got %d", filled[i].Name, len(aggs[i].Samples), len(filled[i].Samples))
		}
	}

	faulkner, ok := Find(filled, KindAuthor, corpus.Contemporary, "Faulkner")
	if !ok {
		t.Fatal("Faulkner aggregate not found")
	}
	if len(faulkner.Samples) != 1 || !near(faulkner.Samples[0][adposition.Along], 600) {
		t.Errorf("unexpected Faulkner samples %v", faulkner.Samples)
	}
}

func TestAuthorInBothGroups(t *testing.T) {
	h := NewHandler()
	err := h.Aggregate([]corpus.Record{
		record(corpus.UnknownAuthor, corpus.Hemingway, 100, adposition.Counts{adposition.Across: 1}),
		record(corpus.UnknownAuthor, corpus.Contemporary, 100, adposition.Counts{adposition.Across: 3}),
		record("Ernest Hemingway", corpus.Hemingway, 100, adposition.Counts{}),
	})
	if err != nil {
		t.Fatal(err)
	}

	authors := h.Authors()
	if len(authors) != 3 {
		t.Fatalf("expected 3 author aggregates, got %d", len(authors))
	}

	hem, ok := Find(authors, KindAuthor, corpus.Hemingway, corpus.UnknownAuthor)
	if !ok {
		t.Fatal("hemingway aggregate of the unknown author not found")
	}
	con, ok := Find(authors, KindAuthor, corpus.Contemporary, corpus.UnknownAuthor)
	if !ok {
		t.Fatal("contemporary aggregate of the unknown author not found")
	}
	if !near(hem.Rates[adposition.Across], 100) || !near(con.Rates[adposition.Across], 300) {
		t.Errorf("expected across rates 100 and 300, got %v and %v", hem.Rates[adposition.Across], con.Rates[adposition.Across])
	}

	if _, ok := Find(authors, KindAuthor, corpus.Contemporary, "Ernest Hemingway"); ok {
		t.Errorf("unexpected contemporary Ernest Hemingway aggregate")
	}
}
