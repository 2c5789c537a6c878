package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/notewall/notewall/internal/logger"
)

// DB wraps a *sql.DB handle together with a logger. All repositories share
// one DB instance.
type DB struct {
	*sql.DB
	log *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver and verifies it with a ping.
//
// Returns a ready *DB or an error if the DSN is invalid or the database is
// unreachable.
func NewConnectPostgres(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	log.Info().Msg("connected to postgres")

	return &DB{DB: conn, log: log}, nil
}

// uniqueConstraintName extracts the violated constraint name from a
// PostgreSQL unique violation error. Returns an empty string when err is not
// a unique violation.
func uniqueConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName
	}

	return ""
}
