package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/stat"
)

const (
	FormatTable   = "table"
	FormatJSON    = "json"
	DefaultFormat = FormatTable
)

func SupportedFormats() []string {
	return []string{FormatTable, FormatJSON}
}

// Report is what the renderers present: the aggregates of the normalize
// step and the rows of the compare step. Aggregates carry their samples
// for the rate summary.
type Report struct {
	Aggregates []stat.Aggregate
	Rows       []compare.Row

	// Features of each author against the other authors
	Features []compare.Feature
}

// GroupRows returns the rows comparing the two groups.
func (rep Report) GroupRows() []compare.Row {
	return rep.rows(stat.KindGroup)
}

// AuthorRows returns the rows comparing an author against the Hemingway
// group.
func (rep Report) AuthorRows() []compare.Row {
	return rep.rows(stat.KindAuthor)
}

func (rep Report) rows(kind stat.Kind) []compare.Row {
	var rows []compare.Row
	for _, r := range rep.Rows {
		if r.Kind == kind {
			rows = append(rows, r)
		}
	}
	return rows
}

// Authors returns the author aggregates in stored order.
func (rep Report) Authors() []stat.Aggregate {
	var aggs []stat.Aggregate
	for _, agg := range rep.Aggregates {
		if agg.Kind == stat.KindAuthor {
			aggs = append(aggs, agg)
		}
	}
	return aggs
}

type Renderer interface {
	Render(rep Report) error
}

// TableRenderer writes the report as plain text tables.
type TableRenderer struct {
	W io.Writer

	// HasColor highlights distinctive and significant rows
	HasColor bool
}

func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w}
}

var _ Renderer = (*TableRenderer)(nil)

func (r *TableRenderer) Render(rep Report) error {
	sections := []struct {
		title string
		fn    func(Report)
	}{
		{"Hemingway vs contemporaries (per 10,000 words)", r.groups},
		{"Rates by author (per 10,000 words)", r.matrix},
		{"Rate summary per work (per 10,000 words)", r.summary},
		{"Total frequency by author", r.totals},
		{"Author rankings (1 = most frequent)", r.rankings},
		{"Distinctive features (against the other authors)", r.distinctive},
		{"Differences from Hemingway", r.differences},
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(r.W)
		}
		fmt.Fprintf(r.W, "%d. %s\n", i+1, strings.ToUpper(s.title))
		fmt.Fprintln(r.W, strings.Repeat("-", 72))
		s.fn(rep)
	}
	return nil
}

func (r *TableRenderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.W)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

func (r *TableRenderer) groups(rep Report) {
	rows := rep.GroupRows()
	if len(rows) == 0 {
		fmt.Fprintln(r.W, "no group comparison")
		return
	}

	table := r.newTable([]string{"adposition", rows[0].A, rows[0].B, "difference", "ratio", "level", "p-value", "significant"})
	for _, row := range rows {
		r.append(table, []string{
			string(row.Adposition),
			rate(row.RateA),
			rate(row.RateB),
			signed(row.Difference),
			row.RatioString(),
			string(row.Level),
			row.PValueString(),
			yesNo(row.Significant),
		}, row)
	}
	table.Render()
}

func (r *TableRenderer) matrix(rep Report) {
	authors := rep.Authors()
	if len(authors) == 0 {
		fmt.Fprintln(r.W, "no authors")
		return
	}

	header := []string{"author", "works", "words"}
	for _, a := range adposition.All() {
		header = append(header, string(a))
	}
	header = append(header, "total")

	table := r.newTable(header)
	for _, agg := range authors {
		line := []string{agg.Name, strconv.Itoa(agg.NumDocs), strconv.Itoa(agg.TotalWords)}
		for _, a := range adposition.All() {
			line = append(line, rate(agg.Rates[a]))
		}
		line = append(line, rate(agg.Rates.Total()))
		table.Append(line)
	}
	table.Render()
}

func (r *TableRenderer) totals(rep Report) {
	authors := rep.Authors()
	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Rates.Total() > authors[j].Rates.Total()
	})

	table := r.newTable([]string{"author", "total", "most frequent", "rate", "mean words per work"})
	for _, agg := range authors {
		a, v := agg.Rates.Max()
		table.Append([]string{
			agg.Name,
			rate(agg.Rates.Total()),
			string(a),
			rate(v),
			fmt.Sprintf("%.0f", agg.MeanWords()),
		})
	}
	table.Render()
}

// summary lists the mean, sample standard deviation, minimum and maximum
// of the per-work rates of every aggregate.
func (r *TableRenderer) summary(rep Report) {
	table := r.newTable([]string{"name", "adposition", "works", "mean", "std dev", "min", "max"})
	n := 0
	for _, agg := range rep.Aggregates {
		if len(agg.Samples) == 0 {
			continue
		}
		for _, a := range adposition.All() {
			s := agg.Summary(a)
			table.Append([]string{
				agg.Name,
				string(a),
				strconv.Itoa(len(agg.Samples)),
				rate(s.Mean),
				rate(s.StdDev),
				rate(s.Min),
				rate(s.Max),
			})
		}
		n++
	}
	if n == 0 {
		fmt.Fprintln(r.W, "no per-work rates")
		return
	}
	table.Render()
}

func (r *TableRenderer) rankings(rep Report) {
	authors := rep.Authors()
	if len(authors) == 0 {
		fmt.Fprintln(r.W, "no authors")
		return
	}

	ranks := compare.Ranks(authors)
	table := r.newTable(append([]string{"author"}, adpositionNames()...))
	for i, agg := range authors {
		line := []string{agg.Name}
		for _, a := range adposition.All() {
			line = append(line, strconv.FormatFloat(ranks[a][i], 'f', -1, 64))
		}
		table.Append(line)
	}
	table.Render()
}

func (r *TableRenderer) distinctive(rep Report) {
	if len(rep.Features) == 0 {
		fmt.Fprintln(r.W, "no author uses an adposition notably more often than the others")
		return
	}

	table := r.newTable([]string{"author", "adposition", "rate", "others mean", "ratio", "level"})
	for _, f := range rep.Features {
		line := []string{
			f.Author,
			string(f.Adposition),
			rate(f.Rate),
			rate(f.OthersMean),
			fmt.Sprintf("x%.2f", f.Ratio),
			string(f.Level),
		}
		if r.HasColor && f.Level == compare.LevelHigh {
			colors := make([]tablewriter.Colors, len(line))
			for i := range colors {
				colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgYellowColor}
			}
			table.Rich(line, colors)
			continue
		}
		table.Append(line)
	}
	table.Render()
}

// differences lists, per author, the three adpositions the author uses
// more often than the Hemingway group by the widest margin.
func (r *TableRenderer) differences(rep Report) {
	byAuthor := map[string][]compare.Row{}
	var names []string
	for _, row := range rep.AuthorRows() {
		if _, ok := byAuthor[row.A]; !ok {
			names = append(names, row.A)
		}
		byAuthor[row.A] = append(byAuthor[row.A], row)
	}
	if len(names) == 0 {
		fmt.Fprintln(r.W, "no contemporary authors")
		return
	}

	table := r.newTable([]string{"author", "adposition", "difference", "rate", string(corpus.Hemingway)})
	for _, name := range names {
		rows := byAuthor[name]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Difference > rows[j].Difference
		})

		n := 0
		for _, row := range rows {
			if n == 3 || row.Difference <= 0 {
				break
			}
			table.Append([]string{name, string(row.Adposition), signed(row.Difference), rate(row.RateA), rate(row.RateB)})
			n++
		}
	}
	table.Render()
}

func (r *TableRenderer) append(table *tablewriter.Table, line []string, row compare.Row) {
	if !r.HasColor {
		table.Append(line)
		return
	}

	var c tablewriter.Colors
	switch {
	case row.Distinctive() && row.Significant:
		c = tablewriter.Colors{tablewriter.Bold, tablewriter.FgRedColor}
	case row.Distinctive():
		c = tablewriter.Colors{tablewriter.FgYellowColor}
	case row.Significant:
		c = tablewriter.Colors{tablewriter.FgGreenColor}
	default:
		table.Append(line)
		return
	}

	colors := make([]tablewriter.Colors, len(line))
	for i := range colors {
		colors[i] = c
	}
	table.Rich(line, colors)
}

func adpositionNames() []string {
	names := make([]string, 0, len(adposition.All()))
	for _, a := range adposition.All() {
		names = append(names, string(a))
	}
	return names
}

func rate(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func signed(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
