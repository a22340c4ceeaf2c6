package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/stocknest/stocknest_app/internal/apperrors"
)

// OpenSQLite opens the embedded SQLite database and configures pragmas.
// Failures report apperrors.ErrStorageInit.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageInit, "opening database", err)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, apperrors.Wrap(apperrors.ErrStorageInit, fmt.Sprintf("setting pragma %q", p), err)
		}
	}

	return db, nil
}
