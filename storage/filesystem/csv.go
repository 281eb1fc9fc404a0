package filesystem

import (
	"fmt"
	"strconv"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

// undefined is written for a ratio without denominator
const undefined = "undefined"

// row is a CSV data line with its header
type row struct {
	header map[string]int
	fields []string
	line   int
}

func (r row) get(col string) (string, error) {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return "", fmt.Errorf("missing column %s", col)
	}
	return r.fields[i], nil
}

func (r row) getInt(col string) (int, error) {
	s, err := r.get(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func (r row) getFloat(col string) (float64, error) {
	s, err := r.get(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

// optFloat reads an empty or "undefined" field as nil.
func (r row) optFloat(col string) (*float64, error) {
	s, err := r.get(col)
	if err != nil {
		return nil, err
	}
	if s == "" || s == undefined {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", col, err)
	}
	return &v, nil
}

func (r row) group() (corpus.Group, error) {
	s, err := r.get("group")
	if err != nil {
		return "", err
	}
	return corpus.ParseGroup(s)
}

func (r row) counts(suffix string) (adposition.Counts, error) {
	c := adposition.NewCounts()
	for _, a := range adposition.All() {
		v, err := r.getInt(string(a) + suffix)
		if err != nil {
			return nil, err
		}
		c[a] = v
	}
	return c, nil
}

func (r row) rates(suffix string) (adposition.Rates, error) {
	rates := adposition.Rates{}
	for _, a := range adposition.All() {
		v, err := r.getFloat(string(a) + suffix)
		if err != nil {
			return nil, err
		}
		rates[a] = v
	}
	return rates, nil
}

const (
	countSuffix = "_count"
	rateSuffix  = "_per_10k"
)

func columns(suffix string) []string {
	cols := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		cols = append(cols, string(a)+suffix)
	}
	return cols
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func countFields(c adposition.Counts) []string {
	out := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		out = append(out, itoa(c[a]))
	}
	return out
}

func rateFields(r adposition.Rates) []string {
	out := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		out = append(out, ftoa(r[a]))
	}
	return out
}

// counts.csv

func recordHeader() []string {
	h := []string{"id", "author", "title", "year", "group", "path", "word_count", "token_count"}
	return append(h, columns(countSuffix)...)
}

func recordFields(rec corpus.Record) []string {
	f := []string{
		itoa(rec.Id), rec.Author, rec.Title, itoa(rec.Year), string(rec.Group), rec.Path,
		itoa(rec.WordCount), itoa(rec.TokenCount),
	}
	return append(f, countFields(rec.Counts)...)
}

func (r row) record() (corpus.Record, error) {
	var rec corpus.Record
	var err error

	if rec.Id, err = r.getInt("id"); err != nil {
		return rec, err
	}
	if rec.Author, err = r.get("author"); err != nil {
		return rec, err
	}
	if rec.Title, err = r.get("title"); err != nil {
		return rec, err
	}
	if rec.Year, err = r.getInt("year"); err != nil {
		return rec, err
	}
	if rec.Group, err = r.group(); err != nil {
		return rec, err
	}
	if rec.Path, err = r.get("path"); err != nil {
		return rec, err
	}
	if rec.WordCount, err = r.getInt("word_count"); err != nil {
		return rec, err
	}
	if rec.TokenCount, err = r.getInt("token_count"); err != nil {
		return rec, err
	}
	if rec.Counts, err = r.counts(countSuffix); err != nil {
		return rec, err
	}
	return rec, nil
}

// rates.csv

func rateHeader() []string {
	return append(recordHeader(), columns(rateSuffix)...)
}

func rateFieldsOf(d stat.DocRate) []string {
	return append(recordFields(d.Record), rateFields(d.Rates)...)
}

func (r row) docRate() (stat.DocRate, error) {
	rec, err := r.record()
	if err != nil {
		return stat.DocRate{}, err
	}
	rates, err := r.rates(rateSuffix)
	if err != nil {
		return stat.DocRate{}, err
	}
	return stat.DocRate{Record: rec, Rates: rates}, nil
}

// aggregates.csv

func aggregateHeader() []string {
	h := []string{"kind", "name", "group", "num_docs", "total_words"}
	h = append(h, columns(countSuffix)...)
	return append(h, columns(rateSuffix)...)
}

func aggregateFields(agg stat.Aggregate) []string {
	f := []string{string(agg.Kind), agg.Name, string(agg.Group), itoa(agg.NumDocs), itoa(agg.TotalWords)}
	f = append(f, countFields(agg.Counts)...)
	return append(f, rateFields(agg.Rates)...)
}

func (r row) aggregate() (stat.Aggregate, error) {
	var agg stat.Aggregate
	var err error

	kind, err := r.get("kind")
	if err != nil {
		return agg, err
	}
	agg.Kind = stat.Kind(kind)

	if agg.Name, err = r.get("name"); err != nil {
		return agg, err
	}
	if agg.Group, err = r.group(); err != nil {
		return agg, err
	}
	if agg.NumDocs, err = r.getInt("num_docs"); err != nil {
		return agg, err
	}
	if agg.TotalWords, err = r.getInt("total_words"); err != nil {
		return agg, err
	}
	if agg.Counts, err = r.counts(countSuffix); err != nil {
		return agg, err
	}
	if agg.Rates, err = r.rates(rateSuffix); err != nil {
		return agg, err
	}
	return agg, nil
}

// comparison.csv

func comparisonHeader() []string {
	return []string{"kind", "a", "b", "adposition", "rate_a", "rate_b", "difference", "ratio", "level", "p_value", "significant"}
}

func comparisonFields(r compare.Row) []string {
	ratio := undefined
	if r.Ratio != nil {
		ratio = ftoa(*r.Ratio)
	}
	p := ""
	if r.PValue != nil {
		p = ftoa(*r.PValue)
	}

	return []string{
		string(r.Kind), r.A, r.B, string(r.Adposition),
		ftoa(r.RateA), ftoa(r.RateB), ftoa(r.Difference),
		ratio, string(r.Level), p, strconv.FormatBool(r.Significant),
	}
}

func (r row) comparison() (compare.Row, error) {
	var out compare.Row
	var err error

	kind, err := r.get("kind")
	if err != nil {
		return out, err
	}
	out.Kind = stat.Kind(kind)

	if out.A, err = r.get("a"); err != nil {
		return out, err
	}
	if out.B, err = r.get("b"); err != nil {
		return out, err
	}

	ad, err := r.get("adposition")
	if err != nil {
		return out, err
	}
	if out.Adposition, err = adposition.Parse(ad); err != nil {
		return out, err
	}

	if out.RateA, err = r.getFloat("rate_a"); err != nil {
		return out, err
	}
	if out.RateB, err = r.getFloat("rate_b"); err != nil {
		return out, err
	}
	if out.Difference, err = r.getFloat("difference"); err != nil {
		return out, err
	}
	if out.Ratio, err = r.optFloat("ratio"); err != nil {
		return out, err
	}

	level, err := r.get("level")
	if err != nil {
		return out, err
	}
	out.Level = compare.Level(level)

	if out.PValue, err = r.optFloat("p_value"); err != nil {
		return out, err
	}

	sig, err := r.get("significant")
	if err != nil {
		return out, err
	}
	if out.Significant, err = strconv.ParseBool(sig); err != nil {
		return out, fmt.Errorf("column significant: %w", err)
	}

	return out, nil
}
