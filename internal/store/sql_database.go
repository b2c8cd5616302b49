package store

import (
	"context"
	"database/sql"

	"github.com/mvoronin/clinic-sync/internal/logger"
)

// DB wraps *sql.DB with the application logger and, on the server side, an
// [ErrorClassificator] used to decide whether a failed statement is worth
// retrying.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx, so statement helpers
// can run standalone or inside a caller's transaction.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
