package main

import (
	"fmt"

	"github.com/revelaction/adpos/corpus"
)

func lsCommand(path string, ui UI) error {
	m, err := corpus.LoadManifest(path)
	if err != nil {
		return err
	}

	lib, err := m.Library()
	if err != nil {
		return err
	}

	for _, doc := range lib {
		year := ""
		if doc.Year > 0 {
			year = fmt.Sprintf(" (%d)", doc.Year)
		}
		fmt.Fprintf(ui.Out, "📖 %d %-12s %s: %s%s\n", doc.Id, doc.Group, doc.Author, doc.Title, year)
	}

	return nil
}
