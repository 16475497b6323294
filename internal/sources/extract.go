package sources

import (
	"regexp"
	"strings"
)

// Regex field extraction over free prose. Failures are "no extraction" (empty
// string), never errors, so adapters can layer these over any abstract text.

var (
	industryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)is an? (?:[A-Za-z]+ )?multinational ([a-z][a-z\- ]{2,40}?) (?:company|corporation|conglomerate|firm)`),
		regexp.MustCompile(`(?i)is an? (?:[A-Za-z]+ )?([a-z][a-z\- ]{2,40}?) (?:company|corporation|conglomerate|firm|provider)`),
		regexp.MustCompile(`(?i)operates in the ([a-z][a-z\- ]{2,40}?) (?:industry|sector|space)`),
		regexp.MustCompile(`(?i)specializes in ([a-z][a-z\- ]{2,40}?)(?:[.,;]| and)`),
	}

	foundedPattern = regexp.MustCompile(`(?i)(?:founded|established|incorporated|formed)\b[^.]{0,60}?\b(1[89]\d{2}|20\d{2})\b`)

	headquartersPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)headquartered in ([A-Z][\w'’.\- ]+(?:, [A-Z][\w'’.\- ]+)?)`),
		regexp.MustCompile(`(?i)headquarters (?:are |is )?(?:located )?in ([A-Z][\w'’.\- ]+(?:, [A-Z][\w'’.\- ]+)?)`),
		regexp.MustCompile(`(?i)based in ([A-Z][\w'’.\- ]+(?:, [A-Z][\w'’.\- ]+)?)`),
	}

	employeePattern = regexp.MustCompile(`(?i)\b([\d][\d,]{2,})\+?\s+employees`)

	websitePattern = regexp.MustCompile(`(?i)\b(https?://[^\s)\]]+|www\.[a-z0-9.\-]+\.[a-z]{2,})`)

	citationPattern      = regexp.MustCompile(`\[\d+\]|\[[a-z]\]|\[citation needed\]`)
	parentheticalPattern = regexp.MustCompile(`\(([^()]*)\)`)
	corporateSuffixes    = regexp.MustCompile(`(?i)[,]?\s+(Inc|Ltd|LLC|Corp|Corporation|Co|PLC|GmbH|S\.A)\.?(\s|$|[,.])`)
	spaceRun             = regexp.MustCompile(`\s{2,}`)
)

// ExtractIndustry pulls an industry phrase out of descriptive prose.
func ExtractIndustry(text string) string {
	for _, p := range industryPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			industry := strings.TrimSpace(m[1])
			// Last capture group is the phrase; drop leading articles.
			industry = strings.TrimPrefix(industry, "leading ")
			if len(industry) > 2 {
				return capitalize(industry)
			}
		}
	}
	return ""
}

// ExtractFoundedYear pulls a plausible founding year (1800..2099) mentioned
// near a founding verb.
func ExtractFoundedYear(text string) string {
	if m := foundedPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractHeadquarters pulls a headquarters location phrase.
func ExtractHeadquarters(text string) string {
	for _, p := range headquartersPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			hq := strings.TrimSpace(m[1])
			hq = strings.TrimRight(hq, ".,;")
			if hq != "" {
				return hq
			}
		}
	}
	return ""
}

// ExtractEmployeeCount pulls an employee figure like "139,995 employees".
func ExtractEmployeeCount(text string) string {
	if m := employeePattern.FindStringSubmatch(text); m != nil {
		return m[1] + " employees"
	}
	return ""
}

// ExtractWebsite pulls the first URL-looking token.
func ExtractWebsite(text string) string {
	if m := websitePattern.FindStringSubmatch(text); m != nil {
		site := strings.TrimRight(m[1], ".,;")
		if strings.HasPrefix(strings.ToLower(site), "www.") {
			site = "https://" + site
		}
		return site
	}
	return ""
}

// CleanEncyclopediaText strips citation markers, pronunciation guides and
// trademark noise from an encyclopedia lead paragraph.
func CleanEncyclopediaText(text string) string {
	text = citationPattern.ReplaceAllString(text, "")

	// Drop parentheticals that are pronunciation/IPA guides or stock tickers,
	// keep ordinary ones.
	text = parentheticalPattern.ReplaceAllStringFunc(text, func(paren string) string {
		inner := paren[1 : len(paren)-1]
		lower := strings.ToLower(inner)
		if strings.Contains(inner, "/") || strings.Contains(inner, "ˈ") || strings.Contains(inner, "ˌ") ||
			strings.Contains(lower, "pronounced") || strings.Contains(lower, "pronunciation") ||
			strings.Contains(lower, "listen") ||
			strings.Contains(inner, "NASDAQ:") || strings.Contains(inner, "NYSE:") || strings.Contains(inner, "BSE:") {
			return ""
		}
		return paren
	})

	text = strings.NewReplacer("™", "", "®", "").Replace(text)
	text = spaceRun.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(text, " .", ".")
	return strings.TrimSpace(text)
}

// StripCorporateSuffix removes trailing legal-form noise ("Inc.", "Ltd.")
// from a display name.
func StripCorporateSuffix(name string) string {
	cleaned := corporateSuffixes.ReplaceAllString(name, "$2")
	cleaned = strings.TrimRight(strings.TrimSpace(cleaned), ",.")
	if cleaned == "" {
		return name
	}
	return cleaned
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
