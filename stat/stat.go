package stat

import (
	"errors"
	"sort"

	log "github.com/cihub/seelog"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
)

// Kind tells what an Aggregate pools.
type Kind string

const (
	KindGroup  Kind = "group"
	KindAuthor Kind = "author"
)

// DocRate is a Record with its normalized rates.
type DocRate struct {
	corpus.Record
	Rates adposition.Rates `json:"rates"`
}

// Aggregate pools the documents of a group or of one author.
type Aggregate struct {
	Name  string       `json:"name"`
	Kind  Kind         `json:"kind"`
	Group corpus.Group `json:"group"`

	NumDocs    int               `json:"num_docs"`
	TotalWords int               `json:"total_words"`
	Counts     adposition.Counts `json:"counts"`

	// Rates of the pooled counts over the pooled words
	Rates adposition.Rates `json:"rates"`

	// Per-document rates. Not stored, see WithSamples.
	Samples []adposition.Rates `json:"-"`
}

// Summary describes the per-document rates of one adposition.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Normalize returns count / words * 10000 per adposition. A zero word
// count is rejected with corpus.ErrZeroWordCount.
func Normalize(c adposition.Counts, words int) (adposition.Rates, error) {
	if words <= 0 {
		return nil, corpus.ErrZeroWordCount
	}

	r := make(adposition.Rates, len(adposition.All()))
	for _, a := range adposition.All() {
		r[a] = float64(c[a]) / float64(words) * adposition.PerWords
	}
	return r, nil
}

// NormalizeRecord normalizes the counts of one document.
func NormalizeRecord(rec corpus.Record) (DocRate, error) {
	r, err := Normalize(rec.Counts, rec.WordCount)
	if err != nil {
		if errors.Is(err, corpus.ErrZeroWordCount) {
			return DocRate{}, corpus.ZeroWordCount(rec.Name())
		}
		return DocRate{}, err
	}
	return DocRate{Record: rec, Rates: r}, nil
}

// Pool sums the raw counts and the words of docs before normalizing, so
// long documents weigh more than short ones.
func Pool(name string, kind Kind, group corpus.Group, docs []DocRate) (Aggregate, error) {
	if len(docs) == 0 {
		return Aggregate{}, corpus.EmptyCorpusGroup(name)
	}

	agg := Aggregate{
		Name:    name,
		Kind:    kind,
		Group:   group,
		NumDocs: len(docs),
		Counts:  adposition.NewCounts(),
		Samples: make([]adposition.Rates, 0, len(docs)),
	}

	for _, d := range docs {
		agg.TotalWords += d.WordCount
		agg.Counts = agg.Counts.Add(d.Counts)
		agg.Samples = append(agg.Samples, d.Rates)
	}

	r, err := Normalize(agg.Counts, agg.TotalWords)
	if err != nil {
		return Aggregate{}, corpus.ZeroWordCount(name)
	}
	agg.Rates = r

	return agg, nil
}

// Summary returns the descriptive statistics of the per-document rates of
// a. The standard deviation is the sample one, 0 with fewer than two
// documents.
func (agg Aggregate) Summary(a adposition.Adposition) Summary {
	x := agg.Sample(a)
	if len(x) == 0 {
		return Summary{}
	}

	s := Summary{
		Mean: gstat.Mean(x, nil),
		Min:  floats.Min(x),
		Max:  floats.Max(x),
	}
	if len(x) > 1 {
		s.StdDev = gstat.StdDev(x, nil)
	}
	return s
}

// Sample returns the per-document rates of a.
func (agg Aggregate) Sample(a adposition.Adposition) []float64 {
	x := make([]float64, len(agg.Samples))
	for i, r := range agg.Samples {
		x[i] = r[a]
	}
	return x
}

// MeanWords is the average document length of the aggregate.
func (agg Aggregate) MeanWords() float64 {
	if agg.NumDocs == 0 {
		return 0
	}
	return float64(agg.TotalWords) / float64(agg.NumDocs)
}

type Handler struct {
	docs []DocRate
}

func NewHandler() *Handler {
	return &Handler{}
}

// Add normalizes rec and keeps it for aggregation.
func (h *Handler) Add(rec corpus.Record) error {
	d, err := NormalizeRecord(rec)
	if err != nil {
		return err
	}
	h.docs = append(h.docs, d)
	return nil
}

// Aggregate adds all records, stopping at the first error.
func (h *Handler) Aggregate(records []corpus.Record) error {
	for _, rec := range records {
		if err := h.Add(rec); err != nil {
			return err
		}
	}
	return nil
}

// Docs returns the normalized documents in the order they were added.
func (h *Handler) Docs() []DocRate {
	return h.docs
}

// Group pools the documents of g.
func (h *Handler) Group(g corpus.Group) (Aggregate, error) {
	var docs []DocRate
	for _, d := range h.docs {
		if d.Group == g {
			docs = append(docs, d)
		}
	}
	return Pool(string(g), KindGroup, g, docs)
}

// Authors pools the documents of each author. Hemingway authors come
// first, then by name.
func (h *Handler) Authors() []Aggregate {
	type key struct {
		group  corpus.Group
		author string
	}

	byAuthor := map[key][]DocRate{}
	var keys []key
	for _, d := range h.docs {
		k := key{d.Group, d.Author}
		if _, ok := byAuthor[k]; !ok {
			keys = append(keys, k)
		}
		byAuthor[k] = append(byAuthor[k], d)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].group != keys[j].group {
			return keys[i].group == corpus.Hemingway
		}
		return keys[i].author < keys[j].author
	})

	aggs := make([]Aggregate, 0, len(keys))
	for _, k := range keys {
		// never empty, never zero words
		agg, _ := Pool(k.author, KindAuthor, k.group, byAuthor[k])
		aggs = append(aggs, agg)
	}
	return aggs
}

// Get returns the two group aggregates followed by the author aggregates.
// Both groups must have documents.
func (h *Handler) Get() ([]Aggregate, error) {
	var aggs []Aggregate
	for _, g := range corpus.Groups() {
		agg, err := h.Group(g)
		if err != nil {
			return nil, err
		}
		log.Infof("%s: %d documents, %d words", g, agg.NumDocs, agg.TotalWords)
		aggs = append(aggs, agg)
	}

	return append(aggs, h.Authors()...), nil
}

// WithSamples fills the Samples of aggs from the stored document rates.
func WithSamples(aggs []Aggregate, docs []DocRate) []Aggregate {
	out := make([]Aggregate, len(aggs))
	for i, agg := range aggs {
		agg.Samples = nil
		for _, d := range docs {
			if d.Group != agg.Group {
				continue
			}
			if agg.Kind == KindAuthor && d.Author != agg.Name {
				continue
			}
			agg.Samples = append(agg.Samples, d.Rates)
		}
		out[i] = agg
	}
	return out
}

// Find returns the aggregate of the given kind, group and name. An author
// with documents in both groups has one aggregate per group.
func Find(aggs []Aggregate, kind Kind, group corpus.Group, name string) (Aggregate, bool) {
	for _, agg := range aggs {
		if agg.Kind == kind && agg.Group == group && agg.Name == name {
			return agg, true
		}
	}
	return Aggregate{}, false
}
