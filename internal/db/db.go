// Package db provides PostgreSQL database access for the company cache and users.
package db

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

var keyStrip = regexp.MustCompile(`[^a-z0-9]`)

// LookupKey reduces a requested company name to the key used for cache reads
// and writes. Strips everything but letters and digits so "Infosys Ltd." and
// "infosys ltd" collide on the same row.
func LookupKey(name string) string {
	return keyStrip.ReplaceAllString(strings.ToLower(name), "")
}
