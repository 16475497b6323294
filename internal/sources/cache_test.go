package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/types"
)

type fakeStore struct {
	profiles map[string]*types.CompanyProfile
	err      error
}

func (f *fakeStore) GetProfile(ctx context.Context, name string) (*types.CompanyProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[name], nil
}

func (f *fakeStore) SaveProfile(ctx context.Context, requestedName string, p *types.CompanyProfile) error {
	if f.profiles == nil {
		f.profiles = map[string]*types.CompanyProfile{}
	}
	f.profiles[requestedName] = p
	return f.err
}

func TestCacheAdapterHit(t *testing.T) {
	cached := types.NewProfile("Etsy", types.SourceEncyclopedia)
	store := &fakeStore{profiles: map[string]*types.CompanyProfile{"Etsy": cached}}

	adapter := NewCacheAdapter(store)
	assert.Equal(t, "cache", adapter.Name())

	p, err := adapter.TryResolve(context.Background(), "Etsy")
	require.NoError(t, err)
	require.NotNil(t, p)
	// Provenance is rewritten to cache regardless of the stored source.
	assert.Equal(t, types.SourceCache, p.Source)
}

func TestCacheAdapterMiss(t *testing.T) {
	adapter := NewCacheAdapter(&fakeStore{})
	p, err := adapter.TryResolve(context.Background(), "Unknown Co")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCacheAdapterStoreError(t *testing.T) {
	adapter := NewCacheAdapter(&fakeStore{err: errors.New("connection reset by peer")})
	p, err := adapter.TryResolve(context.Background(), "Etsy")
	require.Error(t, err)
	assert.Nil(t, p)
}
