package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryVariantsBoth(t *testing.T) {
	variants := QueryVariants("Etsy", "Backend Engineer")
	require.Len(t, variants, 4)
	assert.Equal(t, "Etsy Backend Engineer interview questions and answers", variants[0])
	assert.Equal(t, "Etsy Backend Engineer interview experience process tips", variants[1])
	assert.Equal(t, "how to prepare for Backend Engineer interview at Etsy", variants[2])
	assert.Equal(t, genericFallbackQuery, variants[3])
}

func TestQueryVariantsCompanyOnly(t *testing.T) {
	variants := QueryVariants("Etsy", "  ")
	require.Len(t, variants, 4)
	for _, v := range variants[:3] {
		assert.Contains(t, v, "Etsy")
		assert.NotContains(t, v, "  ")
	}
}

func TestQueryVariantsTitleOnly(t *testing.T) {
	variants := QueryVariants("", "Data Scientist")
	require.Len(t, variants, 4)
	for _, v := range variants[:3] {
		assert.Contains(t, v, "Data Scientist")
	}
}

func TestQueryVariantsEmpty(t *testing.T) {
	variants := QueryVariants("", "")
	assert.Equal(t, []string{genericFallbackQuery}, variants)
}
