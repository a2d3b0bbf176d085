package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDSN builds the go-sqlite3 data source name for path. Every parameter
// here is applied by the driver to each connection it opens, so pooled
// connections never come up with foreign keys disabled.
func SQLiteDSN(path string, busyTimeout time.Duration) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")
	params.Set("_txlock", "immediate")
	if busyTimeout > 0 {
		params.Set("_busy_timeout", fmt.Sprintf("%d", busyTimeout.Milliseconds()))
	}
	return path + "?" + params.Encode()
}

// ForeignKeysEnabled reports the foreign_keys pragma of one pooled connection.
func ForeignKeysEnabled(ctx context.Context, conn interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}) (bool, error) {
	var enabled int
	if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys;").Scan(&enabled); err != nil {
		return false, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	return enabled == 1, nil
}

// JournalMode returns the journal mode reported by the connection, e.g. "wal".
func JournalMode(ctx context.Context, db *sql.DB) (string, error) {
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode;").Scan(&mode); err != nil {
		return "", fmt.Errorf("failed to read journal_mode pragma: %w", err)
	}
	return mode, nil
}
