package main

import (
	"fmt"

	"github.com/revelaction/adpos/compare"
	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

type compareRepository interface {
	storage.RateReader
	storage.ComparisonWriter
}

func compareCommand(opts CompareOptions, repo compareRepository, ui UI) error {
	if err := checkThresholds(opts.Moderate, opts.High); err != nil {
		return err
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return fmt.Errorf("invalid alpha %v", opts.Alpha)
	}

	aggs, err := repo.Aggregates()
	if err != nil {
		return err
	}
	docs, err := repo.Rates()
	if err != nil {
		return err
	}

	c := &compare.Comparator{Moderate: opts.Moderate, High: opts.High, Alpha: opts.Alpha}
	rows, err := c.All(stat.WithSamples(aggs, docs))
	if err != nil {
		return err
	}

	if err := repo.WriteComparison(rows); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}

	distinctive, significant := 0, 0
	for _, r := range rows {
		if r.Distinctive() {
			distinctive++
		}
		if r.Significant {
			significant++
		}
	}

	fmt.Fprintf(ui.Out, "Compared %d rows: %d distinctive, %d significant\n", len(rows), distinctive, significant)
	return nil
}

func checkThresholds(moderate, high float64) error {
	if moderate <= 1 || high < moderate {
		return fmt.Errorf("invalid thresholds: need 1 < moderate (%v) <= high (%v)", moderate, high)
	}
	return nil
}
