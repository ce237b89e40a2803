package zombiezen

import (
	"runtime"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool on the database at dbPath, creating it if
// needed.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite pool at %s", dbPath)
	}
	return pool, nil
}
