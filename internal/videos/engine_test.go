package videos

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/types"
)

// fakeSearchClient answers queries from a script and records what was asked.
type fakeSearchClient struct {
	mu      sync.Mutex
	results map[string][]types.VideoCandidate
	errs    map[string]error
	queries []string
}

func (f *fakeSearchClient) Search(ctx context.Context, query string, maxResults int64) ([]types.VideoCandidate, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func video(id, title string) types.VideoCandidate {
	return types.VideoCandidate{VideoID: id, Title: title}
}

func TestEngineRejectsEmptyInput(t *testing.T) {
	engine := NewEngine(&fakeSearchClient{})
	_, err := engine.Search(context.Background(), "", "   ", 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestEngineFetchesFirstThreeVariants(t *testing.T) {
	client := &fakeSearchClient{results: map[string][]types.VideoCandidate{
		"Etsy Backend Engineer interview questions and answers": {video("a", "Etsy Backend Engineer interview questions")},
	}}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Len(t, client.queries, 3)
	assert.NotContains(t, client.queries, genericFallbackQuery)
}

func TestEngineRanksByScore(t *testing.T) {
	client := &fakeSearchClient{results: map[string][]types.VideoCandidate{
		"Etsy Backend Engineer interview questions and answers": {
			video("weak", "Unrelated vlog"),
			video("strong", "Etsy Backend Engineer interview experience"),
		},
	}}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "strong", results[0].VideoID)
	assert.Equal(t, "weak", results[1].VideoID)
}

func TestEngineDeduplicatesAcrossVariants(t *testing.T) {
	dup := video("same-id", "Etsy interview experience")
	client := &fakeSearchClient{results: map[string][]types.VideoCandidate{
		"Etsy Backend Engineer interview questions and answers":   {dup},
		"Etsy Backend Engineer interview experience process tips": {dup, video("other", "Etsy hiring process")},
	}}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 10)
	require.NoError(t, err)

	ids := map[string]int{}
	for _, r := range results {
		ids[r.VideoID]++
	}
	assert.Equal(t, 1, ids["same-id"])
	assert.Equal(t, 1, ids["other"])
}

func TestEngineTruncatesToMaxResults(t *testing.T) {
	client := &fakeSearchClient{results: map[string][]types.VideoCandidate{
		"Etsy Backend Engineer interview questions and answers": {
			video("a", "one"), video("b", "two"), video("c", "three"), video("d", "four"),
		},
	}}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestEngineSwallowsPerFetchErrors(t *testing.T) {
	client := &fakeSearchClient{
		errs: map[string]error{
			"Etsy Backend Engineer interview questions and answers":   errors.New("quota exceeded"),
			"Etsy Backend Engineer interview experience process tips": errors.New("quota exceeded"),
		},
		results: map[string][]types.VideoCandidate{
			"how to prepare for Backend Engineer interview at Etsy": {video("x", "Prep video")},
		},
	}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "x", results[0].VideoID)
}

func TestEngineGenericFallbackWhenEmpty(t *testing.T) {
	client := &fakeSearchClient{results: map[string][]types.VideoCandidate{
		genericFallbackQuery: {video("g", "Generic interview tips")},
	}}
	engine := NewEngine(client)

	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g", results[0].VideoID)
	// Three variant fetches plus the one synchronous fallback.
	assert.Len(t, client.queries, 4)
	assert.Equal(t, genericFallbackQuery, client.queries[3])
}

func TestEngineEmptyEverywhere(t *testing.T) {
	engine := NewEngine(&fakeSearchClient{})
	results, err := engine.Search(context.Background(), "Etsy", "Backend Engineer", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
