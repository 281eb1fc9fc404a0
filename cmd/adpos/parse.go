package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/render"
	"github.com/revelaction/adpos/token"
)

// Option structs for subcommands that have flags
type ExtractOptions struct {
	Corpus    string
	Tokenizer string
	Progress  bool
}

type CompareOptions struct {
	Moderate float64
	High     float64
	Alpha    float64
}

type ReportOptions struct {
	Out      string
	Format   string
	NoColor  bool
	NoCharts bool

	// thresholds of the distinctive features
	Moderate float64
	High     float64
}

type RunOptions struct {
	Extract ExtractOptions
	Compare CompareOptions
	Report  ReportOptions
}

const (
	defaultCorpus = "corpus"
	defaultData   = "results/data"
	defaultOut    = "results"
)

func corpusFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "corpus directory or manifest file",
		Value:   defaultCorpus,
		EnvVars: []string{"ADPOS_CORPUS"},
	}
}

func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "result directory, a .db file for SQLite or a redis:// URL",
		Value:   defaultData,
		EnvVars: []string{"ADPOS_DATA"},
	}
}

func tokenizerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "tokenizer",
		Usage: "override the manifest tokenizer (" + strings.Join(token.Names(), ", ") + ")",
	}
}

func noProgressFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-progress",
		Usage: "do not show the progress bar",
	}
}

func thresholdFlags() []cli.Flag {
	c := compare.NewComparator()
	return []cli.Flag{
		&cli.Float64Flag{Name: "moderate", Usage: "ratio of a moderately distinctive adposition", Value: c.Moderate},
		&cli.Float64Flag{Name: "high", Usage: "ratio of a highly distinctive adposition", Value: c.High},
	}
}

func compareFlags() []cli.Flag {
	c := compare.NewComparator()
	return append(thresholdFlags(),
		&cli.Float64Flag{Name: "alpha", Usage: "significance level of the t-test", Value: c.Alpha},
	)
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "directory of report.txt and the charts",
			Value:   defaultOut,
			EnvVars: []string{"ADPOS_OUT"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format (" + strings.Join(render.SupportedFormats(), ", ") + ")",
			Value:   render.DefaultFormat,
		},
		&cli.BoolFlag{Name: "no-color", Usage: "do not highlight distinctive rows"},
		&cli.BoolFlag{Name: "no-charts", Usage: "do not draw the charts"},
	}
}

func extractOptions(c *cli.Context) ExtractOptions {
	return ExtractOptions{
		Corpus:    c.String("corpus"),
		Tokenizer: c.String("tokenizer"),
		Progress:  !c.Bool("no-progress"),
	}
}

func compareOptions(c *cli.Context) CompareOptions {
	return CompareOptions{
		Moderate: c.Float64("moderate"),
		High:     c.Float64("high"),
		Alpha:    c.Float64("alpha"),
	}
}

func reportOptions(c *cli.Context) ReportOptions {
	return ReportOptions{
		Out:      c.String("out"),
		Format:   c.String("format"),
		NoColor:  c.Bool("no-color"),
		NoCharts: c.Bool("no-charts"),
		Moderate: c.Float64("moderate"),
		High:     c.Float64("high"),
	}
}

func runOptions(c *cli.Context) RunOptions {
	return RunOptions{
		Extract: extractOptions(c),
		Compare: compareOptions(c),
		Report:  reportOptions(c),
	}
}
