package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/adpos/storage/filesystem"
	"github.com/revelaction/adpos/storage/sqlite/zombiezen"
)

func TestNewRepository(t *testing.T) {
	p := &Pool{}
	defer p.Close()

	dir := t.TempDir()

	repo, err := NewRepository(p, filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	if _, ok := repo.(*filesystem.Store); !ok {
		t.Errorf("expected the CSV store, got %T", repo)
	}

	repo, err = NewRepository(p, filepath.Join(dir, "sub", "adpos.sqlite"))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	if _, ok := repo.(*zombiezen.Store); !ok {
		t.Errorf("expected the SQLite store, got %T", repo)
	}

	named := filepath.Join(dir, "results.DB")
	if err := os.Mkdir(named, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRepository(&Pool{}, named); err == nil {
		t.Errorf("expected error for a directory named like a database")
	}
}
