package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pranav/placement-helper/internal/types"
)

const defaultWikidataURL = "https://www.wikidata.org/w/api.php"

// Wikidata property IDs for the claims the adapter extracts.
const (
	propIndustry    = "P452"
	propInception   = "P571"
	propHeadquarter = "P159"
	propEmployees   = "P1128"
	propWebsite     = "P856"
)

// WikidataAdapter resolves companies through the Wikidata linked-data API:
// entity search by label, then typed claim extraction by property ID.
type WikidataAdapter struct {
	client  *Client
	baseURL string
}

// NewWikidataAdapter creates the linked-data adapter.
func NewWikidataAdapter(client *Client) *WikidataAdapter {
	return &WikidataAdapter{client: client, baseURL: defaultWikidataURL}
}

// Name implements Adapter.
func (a *WikidataAdapter) Name() string { return "linked_data" }

// TryResolve searches for an entity matching the name and maps its claims to
// profile fields. Item-valued claims (industry, headquarters) require one
// more call to resolve labels.
func (a *WikidataAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	search := url.Values{}
	search.Set("action", "wbsearchentities")
	search.Set("search", name)
	search.Set("language", "en")
	search.Set("format", "json")
	search.Set("limit", "1")

	found, err := a.client.GetJSON(ctx, a.baseURL, search)
	if err != nil {
		return nil, err
	}
	entityID := found.Get("search.0.id").String()
	if entityID == "" {
		return nil, nil
	}

	detail := url.Values{}
	detail.Set("action", "wbgetentities")
	detail.Set("ids", entityID)
	detail.Set("props", "claims|descriptions|labels")
	detail.Set("languages", "en")
	detail.Set("format", "json")

	entities, err := a.client.GetJSON(ctx, a.baseURL, detail)
	if err != nil {
		return nil, err
	}
	entity := entities.Get("entities." + entityID)
	if !entity.Exists() {
		return nil, nil
	}

	display := entity.Get("labels.en.value").String()
	if display == "" {
		display = name
	}
	p := types.NewProfile(StripCorporateSuffix(display), types.SourceLinkedData)

	if desc := entity.Get("descriptions.en.value").String(); desc != "" {
		p.Description = capitalize(desc)
	}

	claims := entity.Get("claims")

	// Date claims are truncated to a 4-digit year.
	if t := claimValue(claims, propInception, "time").String(); len(t) >= 5 {
		p.Founded = t[1:5]
	}
	if amount := claimValue(claims, propEmployees, "amount").String(); amount != "" {
		p.EmployeeCount = strings.TrimPrefix(amount, "+") + " employees"
	}
	if site := claimString(claims, propWebsite); site != "" {
		p.Website = site
	}

	// Resolve item-valued claims to labels in one batch.
	industryID := claimValue(claims, propIndustry, "id").String()
	hqID := claimValue(claims, propHeadquarter, "id").String()
	labels, err := a.fetchLabels(ctx, industryID, hqID)
	if err == nil {
		if label := labels[industryID]; label != "" {
			p.Industry = capitalize(label)
		}
		if label := labels[hqID]; label != "" {
			p.Headquarters = label
		}
	}

	return p, nil
}

func (a *WikidataAdapter) fetchLabels(ctx context.Context, ids ...string) (map[string]string, error) {
	var wanted []string
	for _, id := range ids {
		if id != "" {
			wanted = append(wanted, id)
		}
	}
	if len(wanted) == 0 {
		return map[string]string{}, nil
	}

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", strings.Join(wanted, "|"))
	params.Set("props", "labels")
	params.Set("languages", "en")
	params.Set("format", "json")

	result, err := a.client.GetJSON(ctx, a.baseURL, params)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(wanted))
	for _, id := range wanted {
		labels[id] = result.Get(fmt.Sprintf("entities.%s.labels.en.value", id)).String()
	}
	return labels, nil
}

// claimValue reads claims.<prop>[0].mainsnak.datavalue.value.<field>.
func claimValue(claims gjson.Result, prop, field string) gjson.Result {
	return claims.Get(prop + ".0.mainsnak.datavalue.value." + field)
}

// claimString reads a string-valued claim like the official website.
func claimString(claims gjson.Result, prop string) string {
	return claims.Get(prop + ".0.mainsnak.datavalue.value").String()
}
