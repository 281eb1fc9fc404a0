package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/logging/logtest"
	"github.com/revelaction/adpos/stat"
)

func aggregates(t *testing.T) []stat.Aggregate {
	t.Helper()

	h := stat.NewHandler()
	err := h.Aggregate([]corpus.Record{
		{Author: "Ernest Hemingway", Title: "The Torrents of Spring", Group: corpus.Hemingway, WordCount: 2000,
			Counts: adposition.Counts{adposition.Across: 4, adposition.Through: 2, adposition.Around: 1}},
		{Author: "John Dos Passos", Title: "1919", Group: corpus.Contemporary, WordCount: 3000,
			Counts: adposition.Counts{adposition.Along: 3, adposition.Past: 2}},
		{Author: "William Faulkner", Title: "As I Lay Dying", Group: corpus.Contemporary, WordCount: 1000,
			Counts: adposition.Counts{adposition.Beyond: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	aggs, err := h.Get()
	if err != nil {
		t.Fatal(err)
	}
	return aggs
}

func TestWriteAll(t *testing.T) {
	logtest.Setup()

	aggs := aggregates(t)
	rows, err := compare.NewComparator().All(aggs)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	paths, err := WriteAll(dir, aggs, rows)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	// five summary charts and one per adposition
	if len(paths) != 5+len(adposition.All()) {
		t.Fatalf("expected %d charts, got %d", 5+len(adposition.All()), len(paths))
	}

	for _, name := range []string{GroupsFile, AuthorsFile, TotalsFile, HeatmapFile, RankingsFile, filepath.Join(AdpositionDir, "adposition_past.png")} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestHeatmapFlat(t *testing.T) {
	authors := []stat.Aggregate{
		{Name: "A", Kind: stat.KindAuthor, Rates: adposition.Rates{}},
		{Name: "B", Kind: stat.KindAuthor, Rates: adposition.Rates{}},
	}

	path := filepath.Join(t.TempDir(), "flat.png")
	if err := Heatmap(authors, path); err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
}

func TestGroupsNoRows(t *testing.T) {
	if err := Groups(nil, filepath.Join(t.TempDir(), "g.png")); err == nil {
		t.Fatal("expected error without group rows")
	}
}

func TestRankingsSingleAuthor(t *testing.T) {
	authors := []stat.Aggregate{
		{Name: "A", Kind: stat.KindAuthor, Rates: adposition.Rates{adposition.Along: 2}},
	}

	path := filepath.Join(t.TempDir(), "ranks.png")
	if err := Rankings(authors, path); err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s: %v", path, err)
	}
}
