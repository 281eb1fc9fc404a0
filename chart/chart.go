// Package chart draws the adposition rates as PNG bar charts and heat maps.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	log "github.com/cihub/seelog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

// File names inside the output directory
const (
	GroupsFile     = "hemingway_comparison.png"
	AuthorsFile    = "bars_comparison.png"
	TotalsFile     = "total_frequency_by_author.png"
	HeatmapFile    = "heatmap_comparison.png"
	RankingsFile   = "rankings_heatmap.png"
	AdpositionDir  = "by_adposition"
	adpositionFile = "adposition_%s.png"
)

const rateLabel = "Frequency (per 10,000 words)"

var (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch

	hemingwayColor = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

// WriteAll draws every chart into dir and returns the written paths.
func WriteAll(dir string, aggs []stat.Aggregate, rows []compare.Row) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, AdpositionDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var authors []stat.Aggregate
	for _, agg := range aggs {
		if agg.Kind == stat.KindAuthor {
			authors = append(authors, agg)
		}
	}

	var groupRows []compare.Row
	for _, r := range rows {
		if r.Kind == stat.KindGroup {
			groupRows = append(groupRows, r)
		}
	}

	var paths []string
	draw := func(name string, fn func(path string) error) error {
		path := filepath.Join(dir, name)
		if err := fn(path); err != nil {
			return fmt.Errorf("failed to draw %s: %w", path, err)
		}
		log.Debugf("wrote %s", path)
		paths = append(paths, path)
		return nil
	}

	if err := draw(GroupsFile, func(p string) error { return Groups(groupRows, p) }); err != nil {
		return nil, err
	}

	if len(authors) == 0 {
		log.Warn("no author aggregates, skipping author charts")
		return paths, nil
	}

	if err := draw(AuthorsFile, func(p string) error { return Authors(authors, p) }); err != nil {
		return nil, err
	}
	if err := draw(TotalsFile, func(p string) error { return Totals(authors, p) }); err != nil {
		return nil, err
	}
	if err := draw(HeatmapFile, func(p string) error { return Heatmap(authors, p) }); err != nil {
		return nil, err
	}
	if err := draw(RankingsFile, func(p string) error { return Rankings(authors, p) }); err != nil {
		return nil, err
	}

	for _, a := range adposition.All() {
		name := filepath.Join(AdpositionDir, fmt.Sprintf(adpositionFile, a))
		if err := draw(name, func(p string) error { return Adposition(authors, a, p) }); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Groups draws the rates of both groups side by side for each adposition.
func Groups(rows []compare.Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no group comparison")
	}

	a := make(plotter.Values, len(rows))
	b := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		a[i], b[i] = r.RateA, r.RateB
		names[i] = string(r.Adposition)
	}

	p := plot.New()
	p.Title.Text = "Hemingway vs contemporaries"
	p.Y.Label.Text = rateLabel

	w := vg.Points(20)
	for i, s := range []struct {
		name   string
		values plotter.Values
		color  color.Color
	}{
		{rows[0].A, a, hemingwayColor},
		{rows[0].B, b, plotutil.Color(0)},
	} {
		bars, err := plotter.NewBarChart(s.values, w)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = s.color
		bars.Offset = w * vg.Length(2*i-1) / 2
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}

	p.Legend.Top = true
	p.NominalX(names...)
	return p.Save(width, height, path)
}

// Authors draws the rates of every author as grouped bars, one group per
// adposition.
func Authors(authors []stat.Aggregate, path string) error {
	p := plot.New()
	p.Title.Text = "Adposition frequency by author"
	p.Y.Label.Text = rateLabel

	n := len(authors)
	w := vg.Points(60 / float64(n))

	for i, agg := range authors {
		values := make(plotter.Values, len(adposition.All()))
		for j, a := range adposition.All() {
			values[j] = agg.Rates[a]
		}

		bars, err := plotter.NewBarChart(values, w)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = authorColor(agg, i)
		bars.Offset = w * vg.Length(float64(i)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(agg.Name, bars)
	}

	p.Legend.Top = true
	p.NominalX(adpositionNames()...)
	return p.Save(width, height, path)
}

// Totals draws the rate of all six adpositions together per author, in
// ascending order.
func Totals(authors []stat.Aggregate, path string) error {
	totals := make([]float64, len(authors))
	for i, agg := range authors {
		totals[i] = agg.Rates.Total()
	}
	return horizontal(authors, totals, "Total adposition frequency by author", path)
}

// Adposition draws the rate of a per author, in ascending order.
func Adposition(authors []stat.Aggregate, a adposition.Adposition, path string) error {
	values := make([]float64, len(authors))
	for i, agg := range authors {
		values[i] = agg.Rates[a]
	}
	return horizontal(authors, values, fmt.Sprintf("Frequency of %q by author", a), path)
}

func horizontal(authors []stat.Aggregate, values []float64, title, path string) error {
	idx := make([]int, len(authors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] < values[idx[j]] })

	sorted := make(plotter.Values, len(idx))
	names := make([]string, len(idx))
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(idx)), Labels: make([]string, len(idx))}
	for i, k := range idx {
		sorted[i] = values[k]
		names[i] = authors[k].Name
		labels.XYs[i] = plotter.XY{X: values[k], Y: float64(i)}
		labels.Labels[i] = fmt.Sprintf(" %.2f", values[k])
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = rateLabel

	bars, err := plotter.NewBarChart(sorted, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(2)
	p.Add(bars)

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)

	p.NominalY(names...)
	p.X.Max *= 1.15
	return p.Save(width, height, path)
}

// grid is an author by adposition rate matrix.
type grid struct {
	z [][]float64
}

func (g grid) Dims() (c, r int)   { return len(g.z[0]), len(g.z) }
func (g grid) Z(c, r int) float64 { return g.z[r][c] }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// Heatmap draws the author by adposition rate matrix.
func Heatmap(authors []stat.Aggregate, path string) error {
	g := grid{z: make([][]float64, len(authors))}
	names := make([]string, len(authors))
	for i, agg := range authors {
		names[i] = agg.Name
		g.z[i] = make([]float64, len(adposition.All()))
		for j, a := range adposition.All() {
			g.z[i][j] = agg.Rates[a]
		}
	}

	h := plotter.NewHeatMap(g, palette.Heat(12, 1))
	// a flat matrix would divide by zero when picking colors
	if h.Max == h.Min {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = "Adposition frequency by author (per 10,000 words)"
	p.Add(h)
	p.NominalX(adpositionNames()...)
	p.NominalY(names...)
	return p.Save(width, height, path)
}

// Rankings draws the rank of every author per adposition, 1 being the most
// frequent, with the rank written in each cell.
func Rankings(authors []stat.Aggregate, path string) error {
	ranks := compare.Ranks(authors)

	g := grid{z: make([][]float64, len(authors))}
	names := make([]string, len(authors))
	labels := plotter.XYLabels{}
	for i, agg := range authors {
		names[i] = agg.Name
		g.z[i] = make([]float64, len(adposition.All()))
		for j, a := range adposition.All() {
			g.z[i][j] = ranks[a][i]
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			labels.Labels = append(labels.Labels, strconv.FormatFloat(ranks[a][i], 'f', -1, 64))
		}
	}

	// rank 1 gets the hottest color
	h := plotter.NewHeatMap(g, palette.Reverse(palette.Heat(len(authors)+1, 1)))
	h.Min, h.Max = 1, float64(len(authors))
	if h.Max == h.Min {
		h.Max = h.Min + 1
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Author rankings by adposition (1 = most frequent)"
	p.Add(h, l)
	p.NominalX(adpositionNames()...)
	p.NominalY(names...)
	return p.Save(width, height, path)
}

func adpositionNames() []string {
	names := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		names = append(names, string(a))
	}
	return names
}

func authorColor(agg stat.Aggregate, i int) color.Color {
	if agg.Group == corpus.Hemingway {
		return hemingwayColor
	}
	return plotutil.Color(i)
}
