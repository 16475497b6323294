package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/pranav/placement-helper/internal/types"
)

const defaultSerpAPIURL = "https://serpapi.com/search.json"

// subQuery identifies one of the parallel knowledge-graph searches. The
// indexes are fixed so the merge after the fan-out stays deterministic.
const (
	queryGeneral = iota
	queryIndustry
	queryProducts
	queryCulture
	queryCount
)

// SerpAPIAdapter resolves companies through a search API's knowledge panel.
// It issues several sub-queries in parallel and merges the structured panel
// fields, falling back to regex extraction over organic-result snippets.
type SerpAPIAdapter struct {
	client  *Client
	apiKey  string
	baseURL string
}

// NewSerpAPIAdapter creates the knowledge-graph adapter. An empty apiKey
// disables the adapter: TryResolve returns (nil, nil) without network I/O.
func NewSerpAPIAdapter(client *Client, apiKey string) *SerpAPIAdapter {
	return &SerpAPIAdapter{client: client, apiKey: apiKey, baseURL: defaultSerpAPIURL}
}

// Name implements Adapter.
func (a *SerpAPIAdapter) Name() string { return "knowledge_graph" }

// TryResolve fans out the sub-queries, waits for all of them and merges the
// results in fixed sub-query order.
func (a *SerpAPIAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	if a.apiKey == "" {
		return nil, nil
	}

	searches := [queryCount]string{
		queryGeneral:  name + " company information",
		queryIndustry: name + " company industry business",
		queryProducts: name + " products services offerings",
		queryCulture:  name + " company culture work environment",
	}

	results := [queryCount]gjson.Result{}
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range searches {
		g.Go(func() error {
			params := url.Values{}
			params.Set("engine", "google")
			params.Set("q", q)
			params.Set("api_key", a.apiKey)
			params.Set("num", "5")

			res, err := a.client.GetJSON(gctx, a.baseURL, params)
			if err != nil {
				return fmt.Errorf("sub-query %d failed: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := types.NewProfile(name, types.SourceKnowledgeGraph)
	for i := range results {
		a.applyResult(p, i, results[i])
	}

	if !types.IsSpecified(p.Description) && !types.IsSpecified(p.Industry) && len(p.Products) == 0 {
		return nil, nil
	}
	return p, nil
}

// applyResult folds one sub-query response into the profile. Structured
// knowledge-panel fields win; organic snippets only fill remaining gaps.
func (a *SerpAPIAdapter) applyResult(p *types.CompanyProfile, query int, res gjson.Result) {
	kg := res.Get("knowledge_graph")

	switch query {
	case queryGeneral:
		if v := kg.Get("description").String(); v != "" && !types.IsSpecified(p.Description) {
			p.Description = v
		}
		if v := kg.Get("title").String(); v != "" {
			p.Name = StripCorporateSuffix(v)
		}
		if v := kg.Get("founded").String(); v != "" && !types.IsSpecified(p.Founded) {
			if year := ExtractFoundedYear("founded " + v); year != "" {
				p.Founded = year
			} else {
				p.Founded = v
			}
		}
		if v := kg.Get("headquarters").String(); v != "" && !types.IsSpecified(p.Headquarters) {
			p.Headquarters = v
		}
		if v := kg.Get("number_of_employees").String(); v != "" && !types.IsSpecified(p.EmployeeCount) {
			p.EmployeeCount = v
		}
		if v := kg.Get("revenue").String(); v != "" && !types.IsSpecified(p.Revenue) {
			p.Revenue = v
		}
		if v := kg.Get("website").String(); v != "" && !types.IsSpecified(p.Website) {
			p.Website = v
		}

	case queryIndustry:
		if v := kg.Get("type").String(); v != "" && !types.IsSpecified(p.Industry) {
			p.Industry = v
		}

	case queryProducts:
		kg.Get("products").ForEach(func(_, item gjson.Result) bool {
			if v := strings.TrimSpace(item.String()); v != "" {
				p.Products = append(p.Products, v)
			}
			return true
		})

	case queryCulture:
		if v := kg.Get("description").String(); v != "" {
			if p.Culture == nil {
				p.Culture = &types.Culture{}
			}
			if p.Culture.TeamEnvironment == "" {
				p.Culture.TeamEnvironment = v
			}
		}
	}

	a.applySnippets(p, query, res)
}

// applySnippets runs the regex extractors over organic-result snippets to
// fill fields the knowledge panel left empty.
func (a *SerpAPIAdapter) applySnippets(p *types.CompanyProfile, query int, res gjson.Result) {
	var snippets []string
	res.Get("organic_results").ForEach(func(_, item gjson.Result) bool {
		if s := item.Get("snippet").String(); s != "" {
			snippets = append(snippets, s)
		}
		return true
	})
	if len(snippets) == 0 {
		return
	}
	combined := strings.Join(snippets, " ")

	switch query {
	case queryGeneral:
		if !types.IsSpecified(p.Description) {
			p.Description = snippets[0]
		}
		if !types.IsSpecified(p.Founded) {
			if v := ExtractFoundedYear(combined); v != "" {
				p.Founded = v
			}
		}
		if !types.IsSpecified(p.Headquarters) {
			if v := ExtractHeadquarters(combined); v != "" {
				p.Headquarters = v
			}
		}
		if !types.IsSpecified(p.EmployeeCount) {
			if v := ExtractEmployeeCount(combined); v != "" {
				p.EmployeeCount = v
			}
		}
	case queryIndustry:
		if !types.IsSpecified(p.Industry) {
			if v := ExtractIndustry(combined); v != "" {
				p.Industry = v
			}
		}
	}
}
