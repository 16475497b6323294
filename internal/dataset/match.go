package dataset

import (
	"context"
	"strings"

	"github.com/pranav/placement-helper/internal/types"
)

// Find looks a company up in the dataset with three tiers of matching, most
// precise first:
//
//  1. exact normalized-name match
//  2. substring containment, either direction
//  3. token overlap (any word of the query matches any word of a candidate)
//
// Within a tier the first dataset occurrence wins; there is no scoring.
// Returns nil when nothing matches at any tier.
func (l *Loader) Find(ctx context.Context, name string) *Record {
	query := types.NormalizeCompanyName(name)
	if query == "" {
		return nil
	}

	records := l.Load(ctx)
	if len(records) == 0 {
		return nil
	}

	// Tier 1: exact normalized match.
	for i := range records {
		if types.NormalizeCompanyName(records[i].Name) == query {
			return &records[i]
		}
	}

	// Tier 2: substring containment either direction.
	for i := range records {
		candidate := types.NormalizeCompanyName(records[i].Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			return &records[i]
		}
	}

	// Tier 3: token overlap.
	queryTokens := types.NameTokens(name)
	for i := range records {
		candidateTokens := types.NameTokens(records[i].Name)
		if tokensOverlap(queryTokens, candidateTokens) {
			return &records[i]
		}
	}

	return nil
}

func tokensOverlap(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	for _, t := range b {
		if set[t] {
			return true
		}
	}
	return false
}

// All exposes the loaded records for listing and search.
func (l *Loader) All(ctx context.Context) []Record {
	return l.Load(ctx)
}
