// Package resolver orchestrates the company-resolution cascade: cache, bulk
// dataset, external sources in a fixed priority order, then curated and
// placeholder fallbacks. Callers always get renderable profile data.
package resolver

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/pranav/placement-helper/internal/sources"
	"github.com/pranav/placement-helper/internal/types"
)

// minDescriptionLen is the quality gate: an external result short-circuits
// the cascade only when its description is at least this long and its
// industry is specified.
const minDescriptionLen = 60

// networkDegradedThreshold is how many network-class adapter failures in one
// resolution flip the result to connectivity-degraded.
const networkDegradedThreshold = 3

// connectivityErrMsg is the distinct message for connectivity-degraded
// resolutions, as opposed to "no data found".
const connectivityErrMsg = "unable to reach company data sources due to network issues; showing placeholder data"

// Result is the tagged outcome of a resolution. Profile is non-nil whenever
// any data, including placeholder data, was produced; Success is false only
// for validation errors and connectivity-degraded resolutions.
type Result struct {
	Success bool
	Profile *types.CompanyProfile
	Err     string
}

// Service runs the resolution cascade. Construct with New; the external
// adapter order is fixed at construction and never re-sorted.
type Service struct {
	store    sources.ProfileStore
	cache    sources.Adapter
	dataset  sources.Adapter
	external []sources.Adapter
	curated  sources.Adapter
}

// New creates a resolution service. store may be nil (no cache reads or
// write-backs, e.g. in tests or degraded deployments); external adapters are
// tried in the order given.
func New(store sources.ProfileStore, datasetAdapter sources.Adapter, external ...sources.Adapter) *Service {
	s := &Service{
		store:    store,
		dataset:  datasetAdapter,
		external: external,
		curated:  sources.NewCuratedAdapter(),
	}
	if store != nil {
		s.cache = sources.NewCacheAdapter(store)
	}
	return s
}

// Resolve runs the full cascade for one company name.
func (s *Service) Resolve(ctx context.Context, name string) Result {
	requested := strings.TrimSpace(name)
	if requested == "" {
		return Result{Success: false, Err: "company name is required"}
	}

	// Cache short-circuits everything.
	if s.cache != nil {
		if profile, err := s.try(ctx, s.cache, requested); err == nil && profile != nil {
			return Result{Success: true, Profile: EnsureComplete(profile)}
		}
	}

	// Dataset hit: back-fill, persist, return.
	if s.dataset != nil {
		if profile, err := s.try(ctx, s.dataset, requested); err == nil && profile != nil {
			EnsureComplete(profile)
			s.persist(ctx, requested, profile)
			return Result{Success: true, Profile: profile}
		}
	}

	// External cascade: sequential, fixed order, merge-as-you-go.
	var merged *types.CompanyProfile
	var contributors []types.Source
	networkFailures := 0

	for _, adapter := range s.external {
		profile, err := s.try(ctx, adapter, requested)
		if err != nil {
			if sources.IsNetworkError(err) {
				networkFailures++
			}
			continue
		}
		if profile == nil {
			continue
		}

		accepted := isQuality(profile)
		merged = Merge(merged, profile)
		contributors = append(contributors, profile.Source)
		if accepted {
			break
		}
	}

	if merged != nil {
		merged.Source = combinedSource(contributors)
		EnsureComplete(merged)
		s.persist(ctx, requested, merged)
		return Result{Success: true, Profile: merged}
	}

	if networkFailures >= networkDegradedThreshold {
		// Best-effort payload: hand-authored curated data when we have it,
		// a synthesized placeholder otherwise. Degraded results are never
		// cached so real sources are retried once connectivity returns.
		if profile, err := s.try(ctx, s.curated, requested); err == nil && profile != nil {
			EnsureComplete(profile)
			return Result{Success: false, Profile: profile, Err: connectivityErrMsg}
		}
		placeholder := EnsureComplete(sources.GeneratePlaceholder(requested))
		return Result{Success: false, Profile: placeholder, Err: connectivityErrMsg}
	}

	// Nothing found anywhere: curated table, then a synthesized placeholder.
	// Both are success results so the caller never sees a dead end.
	if profile, err := s.try(ctx, s.curated, requested); err == nil && profile != nil {
		EnsureComplete(profile)
		s.persist(ctx, requested, profile)
		return Result{Success: true, Profile: profile}
	}

	placeholder := EnsureComplete(sources.GeneratePlaceholder(requested))
	return Result{Success: true, Profile: placeholder}
}

// try runs one adapter with logging. Adapter failures are returned for
// classification but never escape Resolve.
func (s *Service) try(ctx context.Context, adapter sources.Adapter, name string) (*types.CompanyProfile, error) {
	start := time.Now()
	profile, err := adapter.TryResolve(ctx, name)
	elapsed := time.Since(start).Round(time.Millisecond)
	switch {
	case err != nil:
		log.Printf("resolver: source %s failed for %q after %s: %v", adapter.Name(), name, elapsed, err)
	case profile != nil:
		log.Printf("resolver: source %s answered %q in %s", adapter.Name(), name, elapsed)
	}
	return profile, err
}

// persist writes the finished profile back to the store keyed by the
// original requested name. Placeholder profiles are not cached so future
// lookups retry the real sources. Failures are logged and swallowed.
func (s *Service) persist(ctx context.Context, requestedName string, profile *types.CompanyProfile) {
	if s.store == nil || profile.Source == types.SourcePlaceholder {
		return
	}
	if err := s.store.SaveProfile(ctx, requestedName, profile); err != nil {
		log.Printf("resolver: failed to cache profile for %q: %v", requestedName, err)
	}
}

// isQuality reports whether an external result is complete enough to stop
// the cascade: a non-trivial description and a specified industry.
func isQuality(p *types.CompanyProfile) bool {
	return types.IsSpecified(p.Description) &&
		len(p.Description) >= minDescriptionLen &&
		types.IsSpecified(p.Industry)
}

// combinedSource tags a merged result: the single contributor's own tag when
// only one source answered, combined_fallback otherwise.
func combinedSource(contributors []types.Source) types.Source {
	if len(contributors) == 1 {
		return contributors[0]
	}
	return types.SourceCombinedFallback
}
