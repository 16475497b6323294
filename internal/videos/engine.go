// Package videos implements the interview-video relevance engine: query
// variant generation, a bounded concurrent fetch against the video search
// API, heuristic scoring and ranked deduplication.
package videos

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pranav/placement-helper/internal/types"
)

// ErrEmptyQuery is returned when neither a company nor a job title is given.
var ErrEmptyQuery = errors.New("either a company name or a job title is required")

// maxconcurrentVariants bounds how many query variants are fetched, capping
// API quota usage per search.
const maxConcurrentVariants = 3

// DefaultMaxResults is used when the caller does not bound the result list.
const DefaultMaxResults = 10

// perQueryFetch is how many candidates each variant fetch requests; the
// merged pool is larger than maxResults so scoring has something to rank.
const perQueryFetch = 10

// SearchClient is the video search API surface the engine depends on.
type SearchClient interface {
	Search(ctx context.Context, query string, maxResults int64) ([]types.VideoCandidate, error)
}

// Engine ranks interview-preparation videos for a company and job title.
// Stateless per request; safe for concurrent use.
type Engine struct {
	client SearchClient
	now    func() time.Time
}

// NewEngine creates a video relevance engine over a search client.
func NewEngine(client SearchClient) *Engine {
	return &Engine{client: client, now: time.Now}
}

// Search fetches, scores and ranks video candidates, best first. The list is
// deduplicated by video ID and truncated to maxResults.
func (e *Engine) Search(ctx context.Context, company, jobTitle string, maxResults int) ([]types.VideoCandidate, error) {
	if strings.TrimSpace(company) == "" && strings.TrimSpace(jobTitle) == "" {
		return nil, ErrEmptyQuery
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	variants := QueryVariants(company, jobTitle)
	fetch := variants
	if len(fetch) > maxConcurrentVariants {
		fetch = fetch[:maxConcurrentVariants]
	}

	// Fetch the leading variants concurrently. Each fetch swallows its own
	// failure so one bad query never aborts the search; results are merged
	// in variant order, not arrival order.
	perVariant := make([][]types.VideoCandidate, len(fetch))
	var g errgroup.Group
	for i, query := range fetch {
		g.Go(func() error {
			found, err := e.client.Search(ctx, query, perQueryFetch)
			if err != nil {
				log.Printf("videos: query %q failed: %v", query, err)
				return nil
			}
			perVariant[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var candidates []types.VideoCandidate
	for _, found := range perVariant {
		candidates = append(candidates, found...)
	}

	// One synchronous generic retry before giving up entirely.
	if len(candidates) == 0 {
		found, err := e.client.Search(ctx, genericFallbackQuery, perQueryFetch)
		if err != nil {
			log.Printf("videos: fallback query failed: %v", err)
		}
		candidates = found
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return e.rank(candidates, company, jobTitle, maxResults), nil
}

// rank scores, sorts descending, deduplicates by video ID keeping the
// best-scored occurrence, and truncates.
func (e *Engine) rank(candidates []types.VideoCandidate, company, jobTitle string, maxResults int) []types.VideoCandidate {
	now := e.now()
	scores := make(map[int]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = scoreCandidate(c, company, jobTitle, now)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	seen := make(map[string]bool, len(candidates))
	ranked := make([]types.VideoCandidate, 0, maxResults)
	for _, idx := range order {
		c := candidates[idx]
		if c.VideoID == "" || seen[c.VideoID] {
			continue
		}
		seen[c.VideoID] = true
		ranked = append(ranked, c)
		if len(ranked) == maxResults {
			break
		}
	}
	return ranked
}
