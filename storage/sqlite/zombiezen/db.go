package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// The pipeline steps run one after the other and each holds a single
// connection while it reads or replaces an artifact.
const poolSize = 2

// busyTimeout lets a second adpos process wait for a running step instead
// of failing with SQLITE_BUSY.
const busyTimeout = "PRAGMA busy_timeout = 5000;"

// NewPool opens the results database at dbPath, creating the file if it
// does not exist.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		Flags:    sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI,
		PoolSize: poolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, busyTimeout, nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open results database %s: %w", dbPath, err)
	}
	return pool, nil
}
