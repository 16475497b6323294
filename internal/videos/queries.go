package videos

import (
	"fmt"
	"strings"
)

// genericFallbackQuery is always the last variant, so even an empty company
// and title pair (rejected earlier) would have something to search.
const genericFallbackQuery = "job interview questions and answers tips"

// QueryVariants generates search-query variants ordered most specific first.
// Only the leading variants are fetched; the generic fallback closes the list.
func QueryVariants(company, jobTitle string) []string {
	company = strings.TrimSpace(company)
	jobTitle = strings.TrimSpace(jobTitle)

	var variants []string
	switch {
	case company != "" && jobTitle != "":
		variants = []string{
			fmt.Sprintf("%s %s interview questions and answers", company, jobTitle),
			fmt.Sprintf("%s %s interview experience process tips", company, jobTitle),
			fmt.Sprintf("how to prepare for %s interview at %s", jobTitle, company),
		}
	case company != "":
		variants = []string{
			fmt.Sprintf("%s interview questions and answers", company),
			fmt.Sprintf("%s interview experience and process", company),
			fmt.Sprintf("how to prepare for an interview at %s", company),
		}
	case jobTitle != "":
		variants = []string{
			fmt.Sprintf("%s interview questions and answers", jobTitle),
			fmt.Sprintf("%s interview experience tips", jobTitle),
			fmt.Sprintf("how to prepare for a %s interview", jobTitle),
		}
	}

	return append(variants, genericFallbackQuery)
}
