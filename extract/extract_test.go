package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/token"
)

func newExtractor(t *testing.T, name string) *Extractor {
	t.Helper()
	tk, err := token.New(name)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	return NewExtractor(tk)
}

func TestExtractScenario(t *testing.T) {
	e := newExtractor(t, token.LexerName)

	rec, err := e.Extract(corpus.Document{Title: "x", Text: "x around x around x"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if rec.Counts[adposition.Around] != 2 {
		t.Errorf("expected 2 around, got %d", rec.Counts[adposition.Around])
	}
	if rec.Counts.Total() != 2 {
		t.Errorf("expected 2 hits, got %d", rec.Counts.Total())
	}
	if rec.WordCount != 5 || rec.TokenCount != 5 {
		t.Errorf("expected 5 words and tokens, got %d %d", rec.WordCount, rec.TokenCount)
	}
}

func TestExtractWordBoundaries(t *testing.T) {
	e := newExtractor(t, token.LexerName)

	text := "Alongside the road, ALONG the river; past-time, pasta, Past! beyondness beyond."
	rec, err := e.Extract(corpus.Document{Text: text})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := adposition.Counts{
		adposition.Along:  1,
		adposition.Past:   1,
		adposition.Beyond: 1,
	}
	for _, a := range adposition.All() {
		if rec.Counts[a] != want[a] {
			t.Errorf("%s: expected %d, got %d", a, want[a], rec.Counts[a])
		}
	}
}

func TestExtractNoMatch(t *testing.T) {
	for _, name := range token.Names() {
		e := newExtractor(t, name)

		rec, err := e.Extract(corpus.Document{Text: "The old man and the sea."})
		if err != nil {
			t.Fatalf("%s: Extract: %v", name, err)
		}

		if len(rec.Counts) != 6 {
			t.Errorf("%s: expected all six adpositions, got %v", name, rec.Counts)
		}
		for _, a := range adposition.All() {
			if rec.Counts[a] != 0 {
				t.Errorf("%s: expected 0 %s, got %d", name, a, rec.Counts[a])
			}
		}
	}
}

func TestCountsBoundedByTokens(t *testing.T) {
	texts := []string{
		"across across across",
		"Through, through; through... around!",
		"",
		"— past —",
		"He went along, and around, and beyond, across and through the past.",
	}

	for _, name := range token.Names() {
		e := newExtractor(t, name)
		for _, text := range texts {
			rec, err := e.Extract(corpus.Document{Text: text})
			if err != nil {
				t.Fatalf("%s: Extract(%q): %v", name, text, err)
			}
			if rec.Counts.Total() > rec.WordCount || rec.WordCount > rec.TokenCount {
				t.Errorf("%s: %q: counts %d, words %d, tokens %d", name, text, rec.Counts.Total(), rec.WordCount, rec.TokenCount)
			}
		}
	}
}

func TestExtractDuplicatedText(t *testing.T) {
	e := newExtractor(t, token.LexerName)
	text := "They rowed across the lake and walked through the woods past noon.\n"

	once, err := e.Extract(corpus.Document{Text: text})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	twice, err := e.Extract(corpus.Document{Text: text + text})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if twice.WordCount != 2*once.WordCount {
		t.Errorf("expected doubled word count, got %d and %d", once.WordCount, twice.WordCount)
	}
	for _, a := range adposition.All() {
		if twice.Counts[a] != 2*once.Counts[a] {
			t.Errorf("%s: expected doubled count, got %d and %d", a, once.Counts[a], twice.Counts[a])
		}
	}
}

func TestLibrary(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("across the river and into the trees"), 0644); err != nil {
		t.Fatal(err)
	}

	lib := corpus.Library{
		{Id: 0, Title: "A", Path: "a.txt", Group: corpus.Hemingway},
	}

	var names []string
	e := newExtractor(t, token.LexerName)
	records, err := e.Library(dir, lib, nil, func(total int, name string) {
		names = append(names, name)
	})
	if err != nil {
		t.Fatalf("Library: %v", err)
	}

	if len(records) != 1 || records[0].Counts[adposition.Across] != 1 || records[0].WordCount != 7 {
		t.Errorf("unexpected records %+v", records)
	}
	if strings.Join(names, ",") != "A" {
		t.Errorf("unexpected callback names %v", names)
	}

	lib = append(lib, corpus.Document{Id: 1, Title: "Missing", Path: "missing.txt"})
	_, err = e.Library(dir, lib, nil, nil)
	if !errors.Is(err, corpus.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}
