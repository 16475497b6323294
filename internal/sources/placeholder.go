package sources

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pranav/placement-helper/internal/types"
)

// industryKeywords maps name fragments to an industry guess. Checked in
// order; first hit wins.
var industryKeywords = []struct {
	fragment string
	industry string
}{
	{"bank", "Banking"},
	{"fin", "Financial Services"},
	{"capital", "Financial Services"},
	{"health", "Healthcare"},
	{"med", "Healthcare"},
	{"pharma", "Pharmaceuticals"},
	{"bio", "Biotechnology"},
	{"retail", "Retail"},
	{"shop", "Retail"},
	{"mart", "Retail"},
	{"soft", "Software"},
	{"tech", "Technology"},
	{"data", "Technology"},
	{"cloud", "Technology"},
	{"digital", "Technology"},
	{"consult", "Consulting"},
	{"solutions", "IT Services"},
	{"systems", "IT Services"},
	{"labs", "Technology"},
	{"auto", "Automotive"},
	{"motor", "Automotive"},
	{"energy", "Energy"},
	{"food", "Food & Beverage"},
	{"travel", "Travel & Hospitality"},
	{"logist", "Logistics"},
	{"media", "Media"},
	{"edu", "Education"},
	{"learn", "Education"},
}

// GuessIndustry guesses an industry from keywords in the company name.
// Returns the Unknown sentinel when nothing matches.
func GuessIndustry(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range industryKeywords {
		if strings.Contains(lower, kw.fragment) {
			return kw.industry
		}
	}
	return types.Unknown
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]`)

// GuessWebsite derives a https://www.<slug>.com guess from the company name.
func GuessWebsite(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(StripCorporateSuffix(name)), "")
	if slug == "" {
		return types.NotSpecified
	}
	return fmt.Sprintf("https://www.%s.com", slug)
}

// GeneratePlaceholder synthesizes a profile entirely from the company name.
// Used only when every other adapter returned nothing: the caller still gets
// renderable content rather than a dead end.
func GeneratePlaceholder(name string) *types.CompanyProfile {
	display := strings.TrimSpace(name)
	p := types.NewProfile(display, types.SourcePlaceholder)

	industry := GuessIndustry(display)
	p.Industry = industry
	p.Website = GuessWebsite(display)

	if types.IsSpecified(industry) {
		p.Description = fmt.Sprintf("%s appears to operate in the %s space. Detailed public information about this company is limited; the profile below is a best-effort placeholder.", display, strings.ToLower(industry))
	} else {
		p.Description = fmt.Sprintf("Public information about %s is limited. The profile below is a best-effort placeholder.", display)
	}

	p.ExtendedDescription = []string{
		"Consider checking the company's official website and LinkedIn page for up-to-date details.",
	}
	return p
}
