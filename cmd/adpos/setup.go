package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/adpos/storage"
	"github.com/revelaction/adpos/storage/filesystem"
	"github.com/revelaction/adpos/storage/redis/redigo"
	"github.com/revelaction/adpos/storage/sqlite/zombiezen"
)

// NewRepository returns the Redis store for a redis:// URL, the SQLite
// store for a .db or .sqlite path and the CSV store of the directory
// otherwise.
func NewRepository(p *Pool, path string) (storage.Repository, error) {
	if redigo.IsURL(path) {
		return redigo.NewStore(p.OpenRedis(path), os.Getenv("ADPOS_REDIS_PREFIX"))
	}

	if !isDatabase(path) {
		return filesystem.NewStore(path)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("repository %s is a directory", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewStore(pool)
}

func isDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// withRepository runs fn on the repository at path and closes it.
func withRepository(path string, fn func(storage.Repository) error) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewRepository(p, path)
	if err != nil {
		return err
	}
	return fn(repo)
}
