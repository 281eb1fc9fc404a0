package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/adpos/logging"
	"github.com/revelaction/adpos/storage"
)

// Set with -ldflags "-X main.BuildTag=... -X main.BuildCommit=..."
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// variables of .env become flag defaults through EnvVars
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fprintErr(ui.Err, fmt.Errorf("failed to load .env: %w", err))
		os.Exit(1)
	}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "adpos: %v\n", err)
}

// newApp builds the command line. The version flag is hidden since -v
// raises the log level.
func newApp(ui UI) *cli.App {
	var verbosity int

	return &cli.App{
		Name:                   "adpos",
		Usage:                  "compare the directional adpositions of Hemingway and his contemporaries",
		Version:                BuildTag,
		HideVersion:            true,
		UseShortOptionHandling: true,
		Writer:                 ui.Out,
		ErrWriter:              ui.Err,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log more, repeat for debug and trace",
				Count:   &verbosity,
			},
		},
		Before: func(c *cli.Context) error {
			return logging.Setup(ui.Err, verbosity)
		},
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "count the adpositions of every corpus document",
				Flags: []cli.Flag{corpusFlag(), dataFlag(), tokenizerFlag(), noProgressFlag()},
				Action: func(c *cli.Context) error {
					return withRepository(c.String("data"), func(repo storage.Repository) error {
						return extractCommand(extractOptions(c), repo, ui)
					})
				},
			},
			{
				Name:  "normalize",
				Usage: "turn the counts into rates per 10,000 words and pool them",
				Flags: []cli.Flag{dataFlag()},
				Action: func(c *cli.Context) error {
					return withRepository(c.String("data"), func(repo storage.Repository) error {
						return normalizeCommand(repo, ui)
					})
				},
			},
			{
				Name:  "compare",
				Usage: "compare Hemingway against the contemporaries",
				Flags: append([]cli.Flag{dataFlag()}, compareFlags()...),
				Action: func(c *cli.Context) error {
					return withRepository(c.String("data"), func(repo storage.Repository) error {
						return compareCommand(compareOptions(c), repo, ui)
					})
				},
			},
			{
				Name:  "report",
				Usage: "print the report and draw the charts",
				Flags: append(append([]cli.Flag{dataFlag()}, reportFlags()...), thresholdFlags()...),
				Action: func(c *cli.Context) error {
					return withRepository(c.String("data"), func(repo storage.Repository) error {
						return reportCommand(reportOptions(c), repo, ui)
					})
				},
			},
			{
				Name:  "run",
				Usage: "extract, normalize, compare and report in one go",
				Flags: append(append([]cli.Flag{corpusFlag(), dataFlag(), tokenizerFlag(), noProgressFlag()}, compareFlags()...), reportFlags()...),
				Action: func(c *cli.Context) error {
					return withRepository(c.String("data"), func(repo storage.Repository) error {
						return runCommand(runOptions(c), repo, ui)
					})
				},
			},
			{
				Name:  "ls",
				Usage: "list the documents of the corpus",
				Flags: []cli.Flag{corpusFlag()},
				Action: func(c *cli.Context) error {
					return lsCommand(c.String("corpus"), ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
			{
				Name:  "bash",
				Usage: "print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:            "complete",
				Hidden:          true,
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return completeCommand(c.Args().Slice(), ui)
				},
			},
		},
	}
}
