package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pranav/placement-helper/internal/types"
)

// -----------------------------------------------------------------------------
// Company Cache Methods
// -----------------------------------------------------------------------------

// GetProfile retrieves a cached profile by requested name, case-insensitively.
// Returns nil without error on a cache miss.
func (db *DB) GetProfile(ctx context.Context, name string) (*types.CompanyProfile, error) {
	key := LookupKey(name)
	if key == "" {
		return nil, nil
	}

	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM company_cache WHERE lookup_key = $1`,
		key,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached profile: %w", err)
	}

	var profile types.CompanyProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile upserts a resolved profile keyed by the original requested name,
// so repeat lookups of the same raw query hit the cache regardless of casing
// or spacing. Last write wins; resolved profiles are derived best-effort data.
func (db *DB) SaveProfile(ctx context.Context, requestedName string, profile *types.CompanyProfile) error {
	key := LookupKey(requestedName)
	if key == "" {
		return fmt.Errorf("cannot cache profile: empty lookup key for %q", requestedName)
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO company_cache (lookup_key, requested_name, company_name, industry, headquarters, profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (lookup_key) DO UPDATE SET
		     requested_name = $2,
		     company_name = $3,
		     industry = $4,
		     headquarters = $5,
		     profile = $6,
		     updated_at = NOW()`,
		key, requestedName, profile.Name, profile.Industry, profile.Headquarters, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// ListProfiles returns listing projections of cached companies in insertion order.
func (db *DB) ListProfiles(ctx context.Context, limit, offset int) ([]types.SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT company_name, industry, headquarters
		 FROM company_cache ORDER BY created_at LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached profiles: %w", err)
	}
	defer rows.Close()

	var results []types.SearchResult
	for rows.Next() {
		var r types.SearchResult
		if err := rows.Scan(&r.Name, &r.Industry, &r.Headquarters); err != nil {
			return nil, fmt.Errorf("failed to scan cached profile: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}

// SearchProfiles returns cached companies whose name or industry contains the
// query, case-insensitively, in insertion order.
func (db *DB) SearchProfiles(ctx context.Context, query string, limit int) ([]types.SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT company_name, industry, headquarters
		 FROM company_cache
		 WHERE company_name ILIKE $1 OR industry ILIKE $1
		 ORDER BY created_at LIMIT $2`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search cached profiles: %w", err)
	}
	defer rows.Close()

	var results []types.SearchResult
	for rows.Next() {
		var r types.SearchResult
		if err := rows.Scan(&r.Name, &r.Industry, &r.Headquarters); err != nil {
			return nil, fmt.Errorf("failed to scan cached profile: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}
