package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/types"
)

func TestEnsureCompleteFillsSentinels(t *testing.T) {
	p := &types.CompanyProfile{Name: "Mystery Holdings", Source: types.SourceInstantAnswer}
	EnsureComplete(p)

	// No scalar leaves the resolver empty.
	assert.NotEmpty(t, p.Description)
	assert.NotEmpty(t, p.Industry)
	assert.NotEmpty(t, p.Founded)
	assert.NotEmpty(t, p.Headquarters)
	assert.NotEmpty(t, p.EmployeeCount)
	assert.NotEmpty(t, p.Revenue)
	assert.NotEmpty(t, p.Website)

	assert.Equal(t, types.Unknown, p.Founded)
	assert.Equal(t, types.NotSpecified, p.Revenue)
	assert.Equal(t, types.SourceInstantAnswer, p.Source)
}

func TestEnsureCompleteGenerators(t *testing.T) {
	p := types.NewProfile("Horizon Fintech", types.SourcePlaceholder)
	EnsureComplete(p)

	assert.Equal(t, "Financial Services", p.Industry)
	assert.Equal(t, "https://www.horizonfintech.com", p.Website)
	assert.Contains(t, p.Description, "financial services")
}

func TestEnsureCompleteKeepsRealData(t *testing.T) {
	p := types.NewProfile("Horizon Fintech", types.SourceEncyclopedia)
	p.Industry = "Payments"
	p.Description = "An actual description from a real source."
	p.Website = "https://horizon.example"
	EnsureComplete(p)

	assert.Equal(t, "Payments", p.Industry)
	assert.Equal(t, "An actual description from a real source.", p.Description)
	assert.Equal(t, "https://horizon.example", p.Website)
}

func TestEnsureCompleteCuratedOverrides(t *testing.T) {
	p := types.NewProfile("Etsy", types.SourceDataset)
	EnsureComplete(p)

	// Missing fields are filled from the curated table, not the generic
	// generators, and the source tag is untouched.
	assert.Equal(t, "E-commerce", p.Industry)
	assert.Equal(t, "2005", p.Founded)
	assert.Equal(t, "https://www.etsy.com", p.Website)
	require.NotNil(t, p.InterviewProcess)
	assert.Equal(t, types.SourceDataset, p.Source)
}

func TestEnsureCompleteCuratedDoesNotOverwrite(t *testing.T) {
	p := types.NewProfile("Etsy", types.SourceEncyclopedia)
	p.Founded = "2006" // deliberately different from the curated entry
	EnsureComplete(p)

	assert.Equal(t, "2006", p.Founded)
}

func TestEnsureCompleteDropsEmptyCulture(t *testing.T) {
	p := types.NewProfile("Mystery Holdings", types.SourceInstantAnswer)
	p.Culture = &types.Culture{}
	EnsureComplete(p)
	assert.Nil(t, p.Culture)
}

func TestEnsureCompleteNil(t *testing.T) {
	assert.Nil(t, EnsureComplete(nil))
}
