package resolver

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/types"
)

// fakeAdapter returns a scripted result and records its calls.
type fakeAdapter struct {
	name    string
	profile *types.CompanyProfile
	err     error
	calls   int
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, nil
	}
	clone := *f.profile
	return &clone, nil
}

// memStore keys profiles case-insensitively like the real store does.
type memStore struct {
	profiles map[string]*types.CompanyProfile
	saveErr  error
	saves    int
}

var memKeyStrip = regexp.MustCompile(`[^a-z0-9]`)

func memKey(name string) string {
	return memKeyStrip.ReplaceAllString(strings.ToLower(name), "")
}

func newMemStore() *memStore {
	return &memStore{profiles: map[string]*types.CompanyProfile{}}
}

func (m *memStore) GetProfile(ctx context.Context, name string) (*types.CompanyProfile, error) {
	p, ok := m.profiles[memKey(name)]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (m *memStore) SaveProfile(ctx context.Context, requestedName string, p *types.CompanyProfile) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	clone := *p
	m.profiles[memKey(requestedName)] = &clone
	return nil
}

func qualityProfile(name string, source types.Source) *types.CompanyProfile {
	p := types.NewProfile(name, source)
	p.Description = "A long, detailed company description that easily clears the acceptance threshold."
	p.Industry = "Technology"
	return p
}

var netErr = errors.New("dial tcp 10.0.0.1:443: connect: connection refused")

func TestResolveRejectsEmptyName(t *testing.T) {
	svc := New(nil, nil)

	for _, name := range []string{"", "   ", "\t\n"} {
		res := svc.Resolve(context.Background(), name)
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Err)
		assert.Nil(t, res.Profile)
	}
}

func TestResolveCacheShortCircuits(t *testing.T) {
	store := newMemStore()
	cached := qualityProfile("Etsy", types.SourceEncyclopedia)
	require.NoError(t, store.SaveProfile(context.Background(), "Etsy", cached))
	store.saves = 0

	external := &fakeAdapter{name: "knowledge_graph", profile: qualityProfile("Etsy", types.SourceKnowledgeGraph)}
	svc := New(store, nil, external)

	res := svc.Resolve(context.Background(), "etsy")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceCache, res.Profile.Source)
	assert.Zero(t, external.calls)
	assert.Zero(t, store.saves, "cache hits are not re-persisted")
}

func TestResolveDatasetHitPersists(t *testing.T) {
	store := newMemStore()
	ds := &fakeAdapter{name: "dataset", profile: qualityProfile("Acme Robotics", types.SourceDataset)}
	external := &fakeAdapter{name: "knowledge_graph", profile: qualityProfile("Acme Robotics", types.SourceKnowledgeGraph)}
	svc := New(store, ds, external)

	res := svc.Resolve(context.Background(), "Acme Robotics")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceDataset, res.Profile.Source)
	assert.Zero(t, external.calls)
	assert.Equal(t, 1, store.saves)
}

func TestResolveQualityAcceptStopsCascade(t *testing.T) {
	first := &fakeAdapter{name: "knowledge_graph", profile: qualityProfile("Acme", types.SourceKnowledgeGraph)}
	second := &fakeAdapter{name: "linked_data", profile: qualityProfile("Acme", types.SourceLinkedData)}
	svc := New(newMemStore(), nil, first, second)

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceKnowledgeGraph, res.Profile.Source)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestResolveMergePrecedenceAcrossAdapters(t *testing.T) {
	a := types.NewProfile("Acme", types.SourceKnowledgeGraph)
	a.Industry = "Tech"

	b := types.NewProfile("Acme", types.SourceLinkedData)
	b.Founded = "1999"

	svc := New(newMemStore(), nil,
		&fakeAdapter{name: "knowledge_graph", profile: a},
		&fakeAdapter{name: "linked_data", profile: b},
	)

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	assert.Equal(t, "Tech", res.Profile.Industry)
	assert.Equal(t, "1999", res.Profile.Founded)
	assert.Equal(t, types.SourceCombinedFallback, res.Profile.Source)
}

func TestResolveSingleContributorKeepsOwnTag(t *testing.T) {
	partial := types.NewProfile("Acme", types.SourceLinkedData)
	partial.Founded = "1999"

	svc := New(newMemStore(), nil,
		&fakeAdapter{name: "knowledge_graph"},
		&fakeAdapter{name: "linked_data", profile: partial},
		&fakeAdapter{name: "encyclopedia"},
	)

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceLinkedData, res.Profile.Source)
}

func TestResolveFallsBackToCurated(t *testing.T) {
	svc := New(newMemStore(), nil,
		&fakeAdapter{name: "knowledge_graph"},
		&fakeAdapter{name: "linked_data"},
	)

	res := svc.Resolve(context.Background(), "Etsy")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceCurated, res.Profile.Source)
	assert.Contains(t, res.Profile.Industry, "E-commerce")
	assert.Contains(t, res.Profile.Founded, "2005")
}

func TestResolvePlaceholderIsSuccess(t *testing.T) {
	store := newMemStore()
	svc := New(store, nil, &fakeAdapter{name: "knowledge_graph"})

	res := svc.Resolve(context.Background(), "Totally Obscure Ventures")
	require.True(t, res.Success)
	require.NotNil(t, res.Profile)
	assert.Equal(t, types.SourcePlaceholder, res.Profile.Source)
	assert.Empty(t, res.Err)
	assert.Zero(t, store.saves, "placeholder profiles are not cached")
}

func TestResolveConnectivityDegraded(t *testing.T) {
	store := newMemStore()
	svc := New(store, nil,
		&fakeAdapter{name: "knowledge_graph", err: netErr},
		&fakeAdapter{name: "linked_data", err: netErr},
		&fakeAdapter{name: "encyclopedia", err: netErr},
		&fakeAdapter{name: "instant_answer", err: netErr},
	)

	res := svc.Resolve(context.Background(), "Acme")
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "network")
	require.NotNil(t, res.Profile, "degraded results still carry placeholder data")
	assert.Equal(t, types.SourcePlaceholder, res.Profile.Source)
	assert.Zero(t, store.saves)
}

func TestResolveDegradedServesCuratedDataWhenAvailable(t *testing.T) {
	store := newMemStore()
	svc := New(store, nil,
		&fakeAdapter{name: "knowledge_graph", err: netErr},
		&fakeAdapter{name: "linked_data", err: netErr},
		&fakeAdapter{name: "encyclopedia", err: netErr},
		&fakeAdapter{name: "instant_answer", err: netErr},
	)

	// Offline lookups of well-known companies return the hand-authored
	// profile instead of a synthesized placeholder, still flagged degraded.
	res := svc.Resolve(context.Background(), "Etsy")
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "network")
	require.NotNil(t, res.Profile)
	assert.Equal(t, types.SourceCurated, res.Profile.Source)
	assert.Contains(t, res.Profile.Industry, "E-commerce")
	assert.Zero(t, store.saves, "degraded results are not cached")
}

func TestResolveNonNetworkFailuresDoNotDegrade(t *testing.T) {
	parseErr := errors.New("invalid JSON from upstream")
	svc := New(newMemStore(), nil,
		&fakeAdapter{name: "knowledge_graph", err: parseErr},
		&fakeAdapter{name: "linked_data", err: parseErr},
		&fakeAdapter{name: "encyclopedia", err: parseErr},
		&fakeAdapter{name: "instant_answer", err: parseErr},
	)

	res := svc.Resolve(context.Background(), "Totally Obscure Ventures")
	assert.True(t, res.Success)
	assert.Equal(t, types.SourcePlaceholder, res.Profile.Source)
}

func TestResolveTwoNetworkFailuresStillSucceed(t *testing.T) {
	svc := New(newMemStore(), nil,
		&fakeAdapter{name: "knowledge_graph", err: netErr},
		&fakeAdapter{name: "linked_data", err: netErr},
		&fakeAdapter{name: "encyclopedia", profile: qualityProfile("Acme", types.SourceEncyclopedia)},
	)

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceEncyclopedia, res.Profile.Source)
}

func TestResolveIdempotentOnRepeat(t *testing.T) {
	store := newMemStore()
	svc := New(store, nil,
		&fakeAdapter{name: "knowledge_graph", profile: qualityProfile("Acme Robotics", types.SourceKnowledgeGraph)},
	)

	first := svc.Resolve(context.Background(), "Acme Robotics")
	require.True(t, first.Success)

	// Any casing or spacing variant of the same name is now a cache hit
	// with identical field values.
	second := svc.Resolve(context.Background(), "  acme ROBOTICS ")
	require.True(t, second.Success)
	assert.Equal(t, types.SourceCache, second.Profile.Source)
	assert.Equal(t, first.Profile.Description, second.Profile.Description)
	assert.Equal(t, first.Profile.Industry, second.Profile.Industry)
	assert.Equal(t, first.Profile.Founded, second.Profile.Founded)
}

func TestResolvePersistenceFailureIsSwallowed(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("connection reset by peer")
	svc := New(store, nil,
		&fakeAdapter{name: "knowledge_graph", profile: qualityProfile("Acme", types.SourceKnowledgeGraph)},
	)

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	assert.Equal(t, types.SourceKnowledgeGraph, res.Profile.Source)
}

func TestResolveAlwaysReturnsCompleteScalars(t *testing.T) {
	partial := types.NewProfile("Acme", types.SourceLinkedData)
	partial.Founded = "1999"
	partial.Description = "" // simulate a sloppy adapter

	svc := New(newMemStore(), nil, &fakeAdapter{name: "linked_data", profile: partial})

	res := svc.Resolve(context.Background(), "Acme")
	require.True(t, res.Success)
	p := res.Profile
	for field, value := range map[string]string{
		"name":          p.Name,
		"description":   p.Description,
		"industry":      p.Industry,
		"founded":       p.Founded,
		"headquarters":  p.Headquarters,
		"employeeCount": p.EmployeeCount,
		"revenue":       p.Revenue,
		"website":       p.Website,
	} {
		assert.NotEmpty(t, value, field)
	}
}
