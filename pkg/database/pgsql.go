package database

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/stocknest_app/internal/apperrors"
)

var errDatabaseURLEmpty = errors.New("database URL is empty")

// NewPgxPool creates a new PostgreSQL connection pool.
// Failures report apperrors.ErrStorageInit.
func NewPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, apperrors.Wrap(apperrors.ErrStorageInit, "connecting to database", errDatabaseURLEmpty)
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageInit, "parsing database config from URL", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageInit, "creating connection pool", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.Wrap(apperrors.ErrStorageInit, "pinging database", err)
	}

	log.Println("Successfully connected to PostgreSQL database.")
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log.Println("PostgreSQL connection pool closed.")
	}
}
