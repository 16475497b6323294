package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/types"
)

const shopifyExtract = `<p><b>Shopify Inc.</b> is a Canadian multinational e-commerce company headquartered in Ottawa, Ontario.[2] It was founded in 2006 and has over 10,000 employees.</p><p>The company reports its revenue in US dollars.</p>`

func wikipediaHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") == "search" {
			assert.Equal(t, "Shopify company", q.Get("srsearch"))
			fmt.Fprint(w, `{"query": {"search": [{"title": "Shopify"}]}}`)
			return
		}
		assert.Equal(t, "Shopify", q.Get("titles"))
		fmt.Fprintf(w, `{"query": {"pages": {"12345": {
			"title": "Shopify",
			"extract": %q,
			"categories": [
				{"title": "Category:Companies listed on the New York Stock Exchange"},
				{"title": "Category:Online retail companies of Canada"}
			]
		}}}}`, shopifyExtract)
	}
}

func TestWikipediaAdapter(t *testing.T) {
	srv := httptest.NewServer(wikipediaHandler(t))
	defer srv.Close()

	adapter := NewWikipediaAdapter(newTestClient())
	adapter.baseURL = srv.URL

	p, err := adapter.TryResolve(context.Background(), "Shopify")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Shopify", p.Name)
	assert.Equal(t, types.SourceEncyclopedia, p.Source)
	assert.Contains(t, p.Description, "Canadian multinational e-commerce company")
	assert.NotContains(t, p.Description, "[2]") // citation markers stripped
	require.Len(t, p.ExtendedDescription, 1)
	assert.Contains(t, p.ExtendedDescription[0], "US dollars")

	assert.Equal(t, "Online retail", p.Industry) // from categories, not prose
	assert.Equal(t, "2006", p.Founded)
	assert.Equal(t, "Ottawa, Ontario", p.Headquarters)
	assert.Equal(t, "10,000 employees", p.EmployeeCount)
}

func TestWikipediaAdapterNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query": {"search": []}}`)
	}))
	defer srv.Close()

	adapter := NewWikipediaAdapter(newTestClient())
	adapter.baseURL = srv.URL

	p, err := adapter.TryResolve(context.Background(), "Unfindable Co")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestWikipediaAdapterEmptyExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("list") == "search" {
			fmt.Fprint(w, `{"query": {"search": [{"title": "Stub Page"}]}}`)
			return
		}
		fmt.Fprint(w, `{"query": {"pages": {"7": {"title": "Stub Page", "extract": ""}}}}`)
	}))
	defer srv.Close()

	adapter := NewWikipediaAdapter(newTestClient())
	adapter.baseURL = srv.URL

	p, err := adapter.TryResolve(context.Background(), "Stub Page")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestIndustryFromCategories(t *testing.T) {
	tests := []struct {
		categories []string
		want       string
	}{
		{[]string{"Category:Software companies of the United States"}, "Software"},
		{[]string{"Category:Defunct companies", "Category:Pharmaceutical companies of India"}, "Pharmaceutical"},
		{[]string{"Category:American companies established in 1995"}, ""},
		{[]string{"Category:1994 establishments in Washington (state)"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, industryFromCategories(tt.categories), "%v", tt.categories)
	}
}

func TestExtractParagraphs(t *testing.T) {
	paras, err := extractParagraphs(`<p>First.</p><p>  </p><p>Second.</p>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"First.", "Second."}, paras)
}
