// Package compare sets the adposition rates of two aggregates side by side.
package compare

import (
	"fmt"
	"math"

	gstat "gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

// Level grades how much more (or less) frequent an adposition is in A.
type Level string

const (
	LevelHigh      Level = "high"
	LevelModerate  Level = "moderate"
	LevelNone      Level = "none"
	LevelLow       Level = "low"
	LevelVeryLow   Level = "very low"
	LevelUndefined Level = "undefined"
)

// Row compares one adposition between aggregate A and aggregate B.
type Row struct {
	Adposition adposition.Adposition `json:"adposition"`

	// Kind of aggregate A: group rows compare the two groups, author rows
	// compare an author against the Hemingway group.
	Kind stat.Kind `json:"kind"`

	A string `json:"a"`
	B string `json:"b"`

	RateA      float64 `json:"rate_a"`
	RateB      float64 `json:"rate_b"`
	Difference float64 `json:"difference"`

	// RateA / RateB, nil when RateB is 0
	Ratio *float64 `json:"ratio"`

	Level Level `json:"level"`

	// Welch t-test over the per-document rates, nil when it can not be
	// computed
	PValue      *float64 `json:"p_value"`
	Significant bool     `json:"significant"`
}

// RatioString formats the ratio, "undefined" when there is none.
func (r Row) RatioString() string {
	if r.Ratio == nil {
		return string(LevelUndefined)
	}
	return fmt.Sprintf("%.2f", *r.Ratio)
}

// PValueString formats the p-value, "-" when there is none.
func (r Row) PValueString() string {
	if r.PValue == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *r.PValue)
}

// Distinctive reports whether A uses the adposition notably more than B.
func (r Row) Distinctive() bool {
	return r.Level == LevelHigh || r.Level == LevelModerate
}

type Comparator struct {
	// Ratio thresholds of LevelModerate and LevelHigh. Their inverses
	// bound LevelLow and LevelVeryLow.
	Moderate float64
	High     float64

	// Significance level of the t-test
	Alpha float64
}

// NewComparator uses the thresholds 1.5 and 2.0 and alpha 0.05.
func NewComparator() *Comparator {
	return &Comparator{Moderate: 1.5, High: 2.0, Alpha: 0.05}
}

// Compare returns one row per adposition, A against B.
func (c *Comparator) Compare(a, b stat.Aggregate) []Row {
	rows := make([]Row, 0, len(adposition.All()))

	for _, ad := range adposition.All() {
		row := Row{
			Adposition: ad,
			Kind:       a.Kind,
			A:          a.Name,
			B:          b.Name,
			RateA:      a.Rates[ad],
			RateB:      b.Rates[ad],
			Difference: a.Rates[ad] - b.Rates[ad],
		}

		if ratio, ok := Ratio(row.RateA, row.RateB); ok {
			row.Ratio = &ratio
		}
		row.Level = c.level(row.Ratio)

		if p, ok := Welch(a.Sample(ad), b.Sample(ad)); ok {
			row.PValue = &p
			row.Significant = p < c.Alpha
		}

		rows = append(rows, row)
	}

	return rows
}

// Groups compares the Hemingway group against the contemporary group.
func (c *Comparator) Groups(aggs []stat.Aggregate) ([]Row, error) {
	hem, ok := stat.Find(aggs, stat.KindGroup, corpus.Hemingway, string(corpus.Hemingway))
	if !ok {
		return nil, corpus.EmptyCorpusGroup(string(corpus.Hemingway))
	}
	con, ok := stat.Find(aggs, stat.KindGroup, corpus.Contemporary, string(corpus.Contemporary))
	if !ok {
		return nil, corpus.EmptyCorpusGroup(string(corpus.Contemporary))
	}

	return c.Compare(hem, con), nil
}

// Authors compares every contemporary author against the Hemingway group.
func (c *Comparator) Authors(aggs []stat.Aggregate) ([]Row, error) {
	hem, ok := stat.Find(aggs, stat.KindGroup, corpus.Hemingway, string(corpus.Hemingway))
	if !ok {
		return nil, corpus.EmptyCorpusGroup(string(corpus.Hemingway))
	}

	var rows []Row
	for _, agg := range aggs {
		if agg.Kind != stat.KindAuthor || agg.Group != corpus.Contemporary {
			continue
		}
		rows = append(rows, c.Compare(agg, hem)...)
	}
	return rows, nil
}

// All returns the group rows followed by the author rows.
func (c *Comparator) All(aggs []stat.Aggregate) ([]Row, error) {
	rows, err := c.Groups(aggs)
	if err != nil {
		return nil, err
	}

	authors, err := c.Authors(aggs)
	if err != nil {
		return nil, err
	}
	return append(rows, authors...), nil
}

func (c *Comparator) level(ratio *float64) Level {
	if ratio == nil {
		return LevelUndefined
	}

	r := *ratio
	switch {
	case r >= c.High:
		return LevelHigh
	case r >= c.Moderate:
		return LevelModerate
	case r <= 1/c.High:
		return LevelVeryLow
	case r <= 1/c.Moderate:
		return LevelLow
	}
	return LevelNone
}

// Ratio returns a / b. It is undefined when b is not positive.
func Ratio(a, b float64) (float64, bool) {
	if b <= 0 {
		return 0, false
	}
	return a / b, true
}

// Welch returns the two-sided p-value of Welch's t-test for the means of
// x and y. It needs two values on each side and some variance.
func Welch(x, y []float64) (float64, bool) {
	n1, n2 := float64(len(x)), float64(len(y))
	if n1 < 2 || n2 < 2 {
		return 0, false
	}

	m1, v1 := gstat.MeanVariance(x, nil)
	m2, v2 := gstat.MeanVariance(y, nil)

	se1, se2 := v1/n1, v2/n2
	se := se1 + se2
	if se <= 0 {
		return 0, false
	}

	t := (m1 - m2) / math.Sqrt(se)
	df := se * se / (se1*se1/(n1-1) + se2*se2/(n2-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t)), true
}
