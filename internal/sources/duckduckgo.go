package sources

import (
	"context"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pranav/placement-helper/internal/types"
)

const defaultDuckDuckGoURL = "https://api.duckduckgo.com/"

// DuckDuckGoAdapter resolves companies through the DuckDuckGo instant-answer
// API. Needs no API key.
type DuckDuckGoAdapter struct {
	client  *Client
	baseURL string
}

// NewDuckDuckGoAdapter creates the instant-answer adapter.
func NewDuckDuckGoAdapter(client *Client) *DuckDuckGoAdapter {
	return &DuckDuckGoAdapter{client: client, baseURL: defaultDuckDuckGoURL}
}

// Name implements Adapter.
func (a *DuckDuckGoAdapter) Name() string { return "instant_answer" }

// TryResolve queries "<name> company" first and falls back to the bare name
// when the first query yields no abstract.
func (a *DuckDuckGoAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	result, err := a.query(ctx, name+" company")
	if err != nil {
		return nil, err
	}
	if result.Get("AbstractText").String() == "" {
		result, err = a.query(ctx, name)
		if err != nil {
			return nil, err
		}
	}

	abstract := result.Get("AbstractText").String()
	infobox := result.Get("Infobox.content")
	if abstract == "" && !infobox.Exists() {
		return nil, nil
	}

	display := result.Get("Heading").String()
	if display == "" {
		display = name
	}
	p := types.NewProfile(StripCorporateSuffix(display), types.SourceInstantAnswer)

	if abstract != "" {
		p.Description = CleanEncyclopediaText(abstract)
	}

	// Structured infobox fields win over regex extraction from the abstract.
	if v := infoboxValue(infobox, "industry"); v != "" {
		p.Industry = v
	} else if v := ExtractIndustry(abstract); v != "" {
		p.Industry = v
	}
	if v := infoboxValue(infobox, "founded"); v != "" {
		p.Founded = v
	} else if v := ExtractFoundedYear(abstract); v != "" {
		p.Founded = v
	}
	if v := infoboxValue(infobox, "headquarters"); v != "" {
		p.Headquarters = v
	} else if v := ExtractHeadquarters(abstract); v != "" {
		p.Headquarters = v
	}
	if v := infoboxValue(infobox, "number of employees"); v != "" {
		p.EmployeeCount = v
	} else if v := ExtractEmployeeCount(abstract); v != "" {
		p.EmployeeCount = v
	}
	if v := infoboxValue(infobox, "website", "official website"); v != "" {
		p.Website = v
	} else if v := result.Get("AbstractURL").String(); v != "" {
		p.Website = v
	}

	return p, nil
}

func (a *DuckDuckGoAdapter) query(ctx context.Context, q string) (gjson.Result, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")
	return a.client.GetJSON(ctx, a.baseURL, params)
}

// infoboxValue finds an infobox entry by label, case-insensitively.
func infoboxValue(infobox gjson.Result, labels ...string) string {
	var value string
	infobox.ForEach(func(_, item gjson.Result) bool {
		label := strings.ToLower(item.Get("label").String())
		for _, want := range labels {
			if label == want {
				value = item.Get("value").String()
				return false
			}
		}
		return true
	})
	return strings.TrimSpace(value)
}
