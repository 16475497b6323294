package sources

import (
	"context"

	"github.com/pranav/placement-helper/internal/types"
)

// CacheAdapter answers lookups from the persistent store. Highest priority
// and cheapest: a hit short-circuits the entire cascade.
type CacheAdapter struct {
	store ProfileStore
}

// NewCacheAdapter creates the cache adapter over a profile store.
func NewCacheAdapter(store ProfileStore) *CacheAdapter {
	return &CacheAdapter{store: store}
}

// Name implements Adapter.
func (a *CacheAdapter) Name() string { return "cache" }

// TryResolve performs a case-insensitive exact-name lookup against the store.
func (a *CacheAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	profile, err := a.store.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	profile.Source = types.SourceCache
	return profile, nil
}
