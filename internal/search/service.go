// Package search implements the company search and listing service over the
// persistent cache and the bulk dataset.
package search

import (
	"context"
	"log"
	"strings"

	"github.com/pranav/placement-helper/internal/dataset"
	"github.com/pranav/placement-helper/internal/types"
)

const (
	// MinQueryLen is the shortest query the API accepts. Shorter queries
	// internally fall back to a small suggestion list instead of matching.
	MinQueryLen = 2

	// DefaultLimit caps search and listing responses.
	DefaultLimit = 20

	// suggestionLimit caps the below-threshold suggestion list.
	suggestionLimit = 5
)

// Store is the cached-profile listing surface of the persistent store.
type Store interface {
	ListProfiles(ctx context.Context, limit, offset int) ([]types.SearchResult, error)
	SearchProfiles(ctx context.Context, query string, limit int) ([]types.SearchResult, error)
}

// Service answers listing and substring-search queries. Cached companies come
// first, then dataset companies, both in underlying order; no ranking.
type Service struct {
	store  Store
	loader *dataset.Loader
}

// New creates a search service. Either dependency may be nil and that source
// is simply skipped.
func New(store Store, loader *dataset.Loader) *Service {
	return &Service{store: store, loader: loader}
}

// Search returns companies whose name or industry contains the query,
// case-insensitively. Queries below MinQueryLen return the plain listing
// capped to a few suggestions.
func (s *Service) Search(ctx context.Context, query string) []types.SearchResult {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLen {
		return s.List(ctx, suggestionLimit, 0)
	}

	needle := strings.ToLower(query)
	var results []types.SearchResult
	seen := map[string]bool{}

	if s.store != nil {
		stored, err := s.store.SearchProfiles(ctx, query, DefaultLimit)
		if err != nil {
			log.Printf("search: store lookup failed for %q: %v", query, err)
		}
		for _, r := range stored {
			if addResult(&results, seen, r) >= DefaultLimit {
				return results
			}
		}
	}

	if s.loader != nil {
		for _, record := range s.loader.All(ctx) {
			if !strings.Contains(strings.ToLower(record.Name), needle) &&
				!strings.Contains(strings.ToLower(record.Industry), needle) {
				continue
			}
			if addResult(&results, seen, projectRecord(record)) >= DefaultLimit {
				return results
			}
		}
	}

	return results
}

// List returns a window of all known companies, cached ones first.
func (s *Service) List(ctx context.Context, limit, offset int) []types.SearchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	var combined []types.SearchResult
	seen := map[string]bool{}

	if s.store != nil {
		stored, err := s.store.ListProfiles(ctx, limit+offset, 0)
		if err != nil {
			log.Printf("search: store listing failed: %v", err)
		}
		for _, r := range stored {
			addResult(&combined, seen, r)
		}
	}

	if s.loader != nil {
		for _, record := range s.loader.All(ctx) {
			if len(combined) >= offset+limit {
				break
			}
			addResult(&combined, seen, projectRecord(record))
		}
	}

	if offset >= len(combined) {
		return nil
	}
	end := offset + limit
	if end > len(combined) {
		end = len(combined)
	}
	return combined[offset:end]
}

// addResult appends r unless a result with the same normalized name is
// already present, and returns the new length.
func addResult(results *[]types.SearchResult, seen map[string]bool, r types.SearchResult) int {
	key := types.NormalizeCompanyName(r.Name)
	if key != "" && !seen[key] {
		seen[key] = true
		*results = append(*results, r)
	}
	return len(*results)
}

// projectRecord maps a dataset row to the listing projection.
func projectRecord(record dataset.Record) types.SearchResult {
	return types.SearchResult{
		Name:         titleWords(record.Name),
		Industry:     capitalize(record.Industry),
		Headquarters: location(record),
	}
}

func location(record dataset.Record) string {
	locality := titleWords(strings.TrimSpace(record.Locality))
	country := titleWords(strings.TrimSpace(record.Country))
	switch {
	case locality != "" && country != "":
		return locality + ", " + country
	case locality != "":
		return locality
	default:
		return country
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
