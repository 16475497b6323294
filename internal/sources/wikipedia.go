package sources

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/pranav/placement-helper/internal/types"
)

const defaultWikipediaURL = "https://en.wikipedia.org/w/api.php"

// industryCategoryPattern matches category titles like
// "Online retail companies of the United States".
var industryCategoryPattern = regexp.MustCompile(`(?i)^(?:category:)?([a-z][a-z -]+?) companies`)

// WikipediaAdapter resolves companies through the Wikipedia API: title
// search, then lead-section extract plus category-derived industry.
type WikipediaAdapter struct {
	client  *Client
	baseURL string
}

// NewWikipediaAdapter creates the encyclopedia adapter.
func NewWikipediaAdapter(client *Client) *WikipediaAdapter {
	return &WikipediaAdapter{client: client, baseURL: defaultWikipediaURL}
}

// Name implements Adapter.
func (a *WikipediaAdapter) Name() string { return "encyclopedia" }

// TryResolve searches for the company's page, pulls the lead extract and
// derives fields from the cleaned text and the page categories.
func (a *WikipediaAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	search := url.Values{}
	search.Set("action", "query")
	search.Set("list", "search")
	search.Set("srsearch", name+" company")
	search.Set("srlimit", "1")
	search.Set("format", "json")

	found, err := a.client.GetJSON(ctx, a.baseURL, search)
	if err != nil {
		return nil, err
	}
	title := found.Get("query.search.0.title").String()
	if title == "" {
		return nil, nil
	}

	detail := url.Values{}
	detail.Set("action", "query")
	detail.Set("prop", "extracts|categories")
	detail.Set("titles", title)
	detail.Set("exintro", "1")
	detail.Set("cllimit", "50")
	detail.Set("redirects", "1")
	detail.Set("format", "json")

	pages, err := a.client.GetJSON(ctx, a.baseURL, detail)
	if err != nil {
		return nil, err
	}

	// The pages object is keyed by page ID; take the first (only) entry.
	var extractHTML string
	var categories []string
	pages.Get("query.pages").ForEach(func(_, page gjson.Result) bool {
		extractHTML = page.Get("extract").String()
		page.Get("categories").ForEach(func(_, cat gjson.Result) bool {
			categories = append(categories, cat.Get("title").String())
			return true
		})
		return false
	})
	if extractHTML == "" {
		return nil, nil
	}

	paragraphs, err := extractParagraphs(extractHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extract for %q: %w", title, err)
	}
	if len(paragraphs) == 0 {
		return nil, nil
	}

	p := types.NewProfile(StripCorporateSuffix(title), types.SourceEncyclopedia)

	lead := CleanEncyclopediaText(paragraphs[0])
	p.Description = lead
	for _, para := range paragraphs[1:] {
		if cleaned := CleanEncyclopediaText(para); cleaned != "" {
			p.ExtendedDescription = append(p.ExtendedDescription, cleaned)
		}
	}

	fullText := strings.Join(paragraphs, " ")
	if industry := industryFromCategories(categories); industry != "" {
		p.Industry = industry
	} else if industry := ExtractIndustry(lead); industry != "" {
		p.Industry = industry
	}
	if year := ExtractFoundedYear(fullText); year != "" {
		p.Founded = year
	}
	if hq := ExtractHeadquarters(fullText); hq != "" {
		p.Headquarters = hq
	}
	if count := ExtractEmployeeCount(fullText); count != "" {
		p.EmployeeCount = count
	}
	if site := ExtractWebsite(fullText); site != "" {
		p.Website = site
	}

	return p, nil
}

// extractParagraphs parses the HTML extract and returns the text of each
// paragraph in order.
func extractParagraphs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs, nil
}

// industryFromCategories derives an industry from category titles matching
// the "<industry> companies ..." pattern.
func industryFromCategories(categories []string) string {
	for _, cat := range categories {
		if m := industryCategoryPattern.FindStringSubmatch(cat); m != nil {
			industry := strings.TrimSpace(m[1])
			// Skip administrative categories like "Defunct companies".
			lower := strings.ToLower(industry)
			if lower == "defunct" || lower == "american" || lower == "multinational" {
				continue
			}
			return capitalize(industry)
		}
	}
	return ""
}
