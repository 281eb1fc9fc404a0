package main

import (
	"fmt"

	log "github.com/cihub/seelog"
	"github.com/gosuri/uiprogress"

	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/extract"
	"github.com/revelaction/adpos/storage"
	"github.com/revelaction/adpos/token"
)

func extractCommand(opts ExtractOptions, repo storage.RecordWriter, ui UI) error {
	m, err := corpus.LoadManifest(opts.Corpus)
	if err != nil {
		return err
	}
	if opts.Tokenizer != "" {
		m.Tokenizer = opts.Tokenizer
	}

	tok, err := token.New(m.Tokenizer)
	if err != nil {
		return err
	}

	lib, err := m.Library()
	if err != nil {
		return err
	}
	if len(lib) == 0 {
		return fmt.Errorf("no documents found in corpus %s", m.Root)
	}

	log.Infof("extracting %d documents with the %s tokenizer", len(lib), m.Tokenizer)

	var cb func(total int, name string)
	if opts.Progress {
		progress := uiprogress.New()
		progress.SetOut(ui.Err)
		progress.Start()
		defer progress.Stop()

		bar := progress.AddBar(len(lib))
		bar.AppendCompleted()
		bar.PrependElapsed()
		cb = func(total int, name string) {
			bar.Incr()
		}
	}

	records, err := extract.NewExtractor(tok).Library(m.Root, lib, m.Encodings, cb)
	if err != nil {
		return err
	}

	if err := repo.WriteRecords(records); err != nil {
		return fmt.Errorf("failed to write counts: %w", err)
	}

	words, matches := 0, 0
	for _, rec := range records {
		words += rec.WordCount
		matches += rec.Counts.Total()
	}

	fmt.Fprintf(ui.Out, "Extracted %d documents: %d words, %d adpositions\n", len(records), words, matches)
	return nil
}
