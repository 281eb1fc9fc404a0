package main

import (
	"fmt"

	log "github.com/cihub/seelog"

	"github.com/revelaction/adpos/chart"
	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/render"
	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

type reportRepository interface {
	storage.RateReader
	storage.ComparisonReader
}

func reportCommand(opts ReportOptions, repo reportRepository, ui UI) error {
	if err := checkThresholds(opts.Moderate, opts.High); err != nil {
		return err
	}

	var r render.Renderer
	switch opts.Format {
	case render.FormatTable:
		r = &render.TableRenderer{W: ui.Out, HasColor: !opts.NoColor}
	case render.FormatJSON:
		r = render.NewJSONRenderer(ui.Out)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	aggs, err := repo.Aggregates()
	if err != nil {
		return err
	}
	rows, err := repo.Comparison()
	if err != nil {
		return err
	}

	docs, err := repo.Rates()
	if err != nil {
		return err
	}
	aggs = stat.WithSamples(aggs, docs)

	c := &compare.Comparator{Moderate: opts.Moderate, High: opts.High}
	rep := render.Report{Aggregates: aggs, Rows: rows, Features: c.Features(aggs)}
	if err := r.Render(rep); err != nil {
		return err
	}

	path, err := render.WriteFile(opts.Out, rep)
	if err != nil {
		return err
	}
	log.Infof("wrote %s", path)

	if opts.NoCharts {
		return nil
	}

	paths, err := chart.WriteAll(opts.Out, aggs, rows)
	if err != nil {
		return err
	}
	log.Infof("wrote %d charts to %s", len(paths), opts.Out)

	return nil
}
