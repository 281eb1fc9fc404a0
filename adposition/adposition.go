package adposition

import (
	"fmt"
	"strings"
)

// Adposition is one of the spatial adpositions measured in the corpus.
type Adposition string

const (
	Across  Adposition = "across"
	Through Adposition = "through"
	Along   Adposition = "along"
	Past    Adposition = "past"
	Around  Adposition = "around"
	Beyond  Adposition = "beyond"
)

// PerWords is the basis of a normalized rate.
const PerWords = 10000

// all keeps the report order of the closed set.
var all = [...]Adposition{Across, Through, Along, Past, Around, Beyond}

// All returns the six adpositions in report order.
func All() []Adposition {
	return all[:]
}

// Lookup reports whether the case-folded word w is an adposition.
func Lookup(w string) (Adposition, bool) {
	for _, a := range all {
		if string(a) == w {
			return a, true
		}
	}
	return "", false
}

// Parse is Lookup for user input, ignoring surrounding space and case.
func Parse(s string) (Adposition, error) {
	a, ok := Lookup(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return "", fmt.Errorf("unknown adposition: %q", s)
	}
	return a, nil
}

// Counts maps each adposition to its occurrences in one document, or the
// sum over several.
type Counts map[Adposition]int

// NewCounts returns Counts with all six members set to zero.
func NewCounts() Counts {
	c := make(Counts, len(all))
	for _, a := range all {
		c[a] = 0
	}
	return c
}

// Total is the sum over the six members.
func (c Counts) Total() int {
	n := 0
	for _, a := range all {
		n += c[a]
	}
	return n
}

// Add returns the member-wise sum of c and o. Neither operand is modified.
func (c Counts) Add(o Counts) Counts {
	sum := NewCounts()
	for _, a := range all {
		sum[a] = c[a] + o[a]
	}
	return sum
}

// Rates maps each adposition to occurrences per PerWords words.
type Rates map[Adposition]float64

// Total is the rate of all six members together.
func (r Rates) Total() float64 {
	var t float64
	for _, a := range all {
		t += r[a]
	}
	return t
}

// Max returns the most frequent adposition. Ties go to the earlier member.
func (r Rates) Max() (Adposition, float64) {
	best := all[0]
	for _, a := range all[1:] {
		if r[a] > r[best] {
			best = a
		}
	}
	return best, r[best]
}
