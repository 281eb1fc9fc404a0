package main

import (
	"github.com/gomodule/redigo/redis"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/adpos/storage/redis/redigo"
	"github.com/revelaction/adpos/storage/sqlite/zombiezen"
)

// Pool opens the connection pool of a repository once, on first use.
type Pool struct {
	p *sqlitex.Pool
	r *redis.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) OpenRedis(url string) *redis.Pool {
	if p.r == nil {
		p.r = redigo.NewPool(url)
	}
	return p.r
}

func (p *Pool) Close() error {
	if p.r != nil {
		p.r.Close()
	}
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}
