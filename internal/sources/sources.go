// Package sources implements the data-source adapters used by the company
// resolution cascade. Each adapter answers a free-text company name with a
// partial profile or nil.
package sources

import (
	"context"

	"github.com/pranav/placement-helper/internal/types"
)

// Adapter is one data-source-specific resolver in the cascade.
//
// TryResolve returns (profile, nil) on a hit, (nil, nil) when the source has
// no data for the name, and (nil, err) when the source itself failed (network
// error, malformed response, timeout). Adapters never panic; the orchestrator
// logs failures with adapter identity and elapsed time and continues the
// cascade, so an adapter error never reaches a caller.
type Adapter interface {
	Name() string
	TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error)
}

// ProfileStore is the persistent keyed storage the cache adapter reads and
// the resolver writes back to. Reads are case-insensitive on the requested
// name; writes upsert by normalized requested name, last write wins.
type ProfileStore interface {
	GetProfile(ctx context.Context, name string) (*types.CompanyProfile, error)
	SaveProfile(ctx context.Context, requestedName string, profile *types.CompanyProfile) error
}
