package main

import (
	"fmt"

	"github.com/revelaction/adpos/stat"
	"github.com/revelaction/adpos/storage"
)

type normalizeRepository interface {
	storage.RecordReader
	storage.RateWriter
}

func normalizeCommand(repo normalizeRepository, ui UI) error {
	records, err := repo.Records()
	if err != nil {
		return err
	}

	h := stat.NewHandler()
	if err := h.Aggregate(records); err != nil {
		return err
	}

	aggs, err := h.Get()
	if err != nil {
		return err
	}

	if err := repo.WriteRates(h.Docs()); err != nil {
		return fmt.Errorf("failed to write rates: %w", err)
	}
	if err := repo.WriteAggregates(aggs); err != nil {
		return fmt.Errorf("failed to write aggregates: %w", err)
	}

	for _, agg := range aggs {
		if agg.Kind != stat.KindGroup {
			continue
		}
		fmt.Fprintf(ui.Out, "%-13s %3d works %9d words %8.2f adpositions per 10k words\n",
			agg.Name, agg.NumDocs, agg.TotalWords, agg.Rates.Total())
	}
	return nil
}
