package compare

import (
	"sort"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

// Feature is an adposition one author uses notably more often than the
// other authors do on average.
type Feature struct {
	Author     string                `json:"author"`
	Group      corpus.Group          `json:"group"`
	Adposition adposition.Adposition `json:"adposition"`

	Rate float64 `json:"rate"`

	// Unweighted mean of the rates of every other author
	OthersMean float64 `json:"others_mean"`

	Ratio float64 `json:"ratio"`
	Level Level   `json:"level"`
}

// Features compares every author aggregate of aggs, Hemingway included,
// against the mean of all the other authors. It needs two authors. An
// adposition no other author uses is never a feature.
func (c *Comparator) Features(aggs []stat.Aggregate) []Feature {
	authors := authorsOf(aggs)
	if len(authors) < 2 {
		return nil
	}

	var features []Feature
	for i, agg := range authors {
		for _, a := range adposition.All() {
			others := make([]float64, 0, len(authors)-1)
			for j, other := range authors {
				if j != i {
					others = append(others, other.Rates[a])
				}
			}

			mean := gstat.Mean(others, nil)
			ratio, ok := Ratio(agg.Rates[a], mean)
			if !ok || ratio < c.Moderate {
				continue
			}

			f := Feature{
				Author:     agg.Name,
				Group:      agg.Group,
				Adposition: a,
				Rate:       agg.Rates[a],
				OthersMean: mean,
				Ratio:      ratio,
				Level:      LevelModerate,
			}
			if ratio >= c.High {
				f.Level = LevelHigh
			}
			features = append(features, f)
		}
	}

	return features
}

// Ranks returns, per adposition, the rank of each author aggregate of aggs
// in the order Authors would list them. Rank 1 is the highest rate and
// tied authors share the mean of their ranks.
func Ranks(aggs []stat.Aggregate) map[adposition.Adposition][]float64 {
	authors := authorsOf(aggs)
	ranks := make(map[adposition.Adposition][]float64, len(adposition.All()))

	for _, a := range adposition.All() {
		idx := make([]int, len(authors))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool {
			return authors[idx[i]].Rates[a] > authors[idx[j]].Rates[a]
		})

		r := make([]float64, len(authors))
		for start := 0; start < len(idx); {
			end := start + 1
			for end < len(idx) && authors[idx[end]].Rates[a] == authors[idx[start]].Rates[a] {
				end++
			}
			// positions start..end-1 hold ranks start+1..end
			shared := float64(start+1+end) / 2
			for _, k := range idx[start:end] {
				r[k] = shared
			}
			start = end
		}
		ranks[a] = r
	}

	return ranks
}

func authorsOf(aggs []stat.Aggregate) []stat.Aggregate {
	var authors []stat.Aggregate
	for _, agg := range aggs {
		if agg.Kind == stat.KindAuthor {
			authors = append(authors, agg)
		}
	}
	return authors
}
