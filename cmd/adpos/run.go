package main

import (
	"github.com/revelaction/adpos/storage"
)

// runCommand chains the four steps on one repository. It stops at the
// first failing step.
func runCommand(opts RunOptions, repo storage.Repository, ui UI) error {
	if err := extractCommand(opts.Extract, repo, ui); err != nil {
		return err
	}
	if err := normalizeCommand(repo, ui); err != nil {
		return err
	}
	if err := compareCommand(opts.Compare, repo, ui); err != nil {
		return err
	}
	return reportCommand(opts.Report, repo, ui)
}
