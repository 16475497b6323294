package types

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9\s]`)
var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeCompanyName lowercases a company name, strips punctuation and
// collapses whitespace. Every component that does fuzzy name matching
// (dataset lookup, curated table, cache keys) uses this same normalization.
func NormalizeCompanyName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = nonAlphaNum.ReplaceAllString(normalized, "")
	normalized = multiSpace.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// NameTokens splits a normalized company name into its words.
func NameTokens(name string) []string {
	normalized := NormalizeCompanyName(name)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
