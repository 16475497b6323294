package resolver

import (
	"fmt"
	"strings"

	"github.com/pranav/placement-helper/internal/sources"
	"github.com/pranav/placement-helper/internal/types"
)

// EnsureComplete back-fills every required scalar field still empty or at a
// sentinel so the profile is always renderable. Curated overrides for
// well-known companies take precedence over the generated fallbacks; the
// profile's source tag is never changed by this pass.
func EnsureComplete(p *types.CompanyProfile) *types.CompanyProfile {
	if p == nil {
		return nil
	}

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = types.Unknown
	}

	if entry := sources.LookupCurated(p.Name); entry != nil {
		applyCurated(p, entry)
	}

	if !types.IsSpecified(p.Industry) {
		p.Industry = sources.GuessIndustry(p.Name)
	}
	if !types.IsSpecified(p.Website) {
		p.Website = sources.GuessWebsite(p.Name)
	}
	if !types.IsSpecified(p.Description) {
		p.Description = fallbackDescription(p.Name, p.Industry)
	}

	// The remaining scalars have no generator; pin them to sentinels so no
	// empty string ever leaves the resolver.
	if !types.IsSpecified(p.Founded) {
		p.Founded = types.Unknown
	}
	if !types.IsSpecified(p.Headquarters) {
		p.Headquarters = types.Unknown
	}
	if !types.IsSpecified(p.EmployeeCount) {
		p.EmployeeCount = types.NotSpecified
	}
	if !types.IsSpecified(p.Revenue) {
		p.Revenue = types.NotSpecified
	}

	if p.Culture != nil && cultureEmpty(p.Culture) {
		p.Culture = nil
	}

	return p
}

// applyCurated fills missing fields from the curated table entry without
// overwriting anything a live source already provided.
func applyCurated(p *types.CompanyProfile, entry *sources.CuratedEntry) {
	source := p.Source
	curated := entry.Profile()
	Merge(p, curated)
	p.Source = source
}

func fallbackDescription(name, industry string) string {
	if types.IsSpecified(industry) {
		return fmt.Sprintf("%s operates in the %s industry. Detailed public information about this company is limited.", name, strings.ToLower(industry))
	}
	return fmt.Sprintf("Detailed public information about %s is limited.", name)
}

func cultureEmpty(c *types.Culture) bool {
	return c.WorkLifeBalance == "" && c.LearningOpportunities == "" &&
		c.TeamEnvironment == "" && len(c.Values) == 0
}
