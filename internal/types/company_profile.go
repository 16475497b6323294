// Package types provides type definitions for structured data used throughout the placement-helper system.
package types

import "time"

// Sentinel values used for scalar profile fields that have no real data.
// Profiles returned to callers never carry empty strings for required scalars.
const (
	NotSpecified = "Not specified"
	Unknown      = "Unknown"
)

// Source records which adapter (or combination of adapters) produced a profile.
type Source string

// Source constants, ordered roughly by cascade priority.
const (
	SourceCache            Source = "cache"
	SourceDataset          Source = "dataset"
	SourceKnowledgeGraph   Source = "knowledge_graph"
	SourceLinkedData       Source = "linked_data"
	SourceEncyclopedia     Source = "encyclopedia"
	SourceInstantAnswer    Source = "instant_answer"
	SourceCurated          Source = "curated"
	SourceCombinedFallback Source = "combined_fallback"
	SourcePlaceholder      Source = "placeholder"
	SourceError            Source = "error"
)

// CompanyProfile is the canonical resolved company record returned to callers.
// Scalar fields always carry either real data or an explicit sentinel; the
// resolver's completion pass enforces this before any profile leaves the core.
type CompanyProfile struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	ExtendedDescription []string `json:"extendedDescription,omitempty"`

	Industry      string `json:"industry"`
	Founded       string `json:"founded"`
	Headquarters  string `json:"headquarters"`
	EmployeeCount string `json:"employeeCount"`
	Revenue       string `json:"revenue"`
	Website       string `json:"website"`

	KeyPeople        []string `json:"keyPeople,omitempty"`
	BusinessSegments []string `json:"businessSegments,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Products         []string `json:"products,omitempty"`
	Services         []string `json:"services,omitempty"`

	Culture          *Culture          `json:"culture,omitempty"`
	InterviewProcess *InterviewProcess `json:"interviewProcess,omitempty"`
	HiringProcess    *HiringProcess    `json:"hiringProcess,omitempty"`
	CareerGrowth     *CareerGrowth     `json:"careerGrowth,omitempty"`

	Source      Source    `json:"source"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Culture describes working environment details. When present, Values is non-empty.
type Culture struct {
	WorkLifeBalance       string   `json:"workLifeBalance,omitempty"`
	LearningOpportunities string   `json:"learningOpportunities,omitempty"`
	TeamEnvironment       string   `json:"teamEnvironment,omitempty"`
	Values                []string `json:"values"`
}

// InterviewProcess describes a company's typical interview loop.
type InterviewProcess struct {
	Rounds          []string `json:"rounds,omitempty"`
	TypicalDuration string   `json:"typicalDuration,omitempty"`
	Tips            []string `json:"tips,omitempty"`
	CommonQuestions []string `json:"commonQuestions,omitempty"`
}

// HiringProcess is a free-form description of how the company hires.
type HiringProcess struct {
	Steps    []string `json:"steps,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// CareerGrowth is a free-form description of growth prospects.
type CareerGrowth struct {
	Paths         []string `json:"paths,omitempty"`
	Opportunities string   `json:"opportunities,omitempty"`
}

// IsSpecified reports whether a scalar field value carries real data rather
// than an empty string or one of the sentinel values.
func IsSpecified(v string) bool {
	return v != "" && v != NotSpecified && v != Unknown
}

// NewProfile returns a profile with every scalar field set to a sentinel.
// Adapters start from this so partially-extracted results never carry
// empty strings.
func NewProfile(name string, source Source) *CompanyProfile {
	return &CompanyProfile{
		Name:          name,
		Description:   NotSpecified,
		Industry:      Unknown,
		Founded:       Unknown,
		Headquarters:  Unknown,
		EmployeeCount: NotSpecified,
		Revenue:       NotSpecified,
		Website:       NotSpecified,
		Source:        source,
		LastUpdated:   time.Now(),
	}
}

// SearchResult is the projection of a profile used by listing and
// autocomplete endpoints. Never carries the full profile.
type SearchResult struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Headquarters string `json:"headquarters"`
}

// ToSearchResult projects a profile down to its listing fields.
func (p *CompanyProfile) ToSearchResult() SearchResult {
	return SearchResult{
		Name:         p.Name,
		Industry:     p.Industry,
		Headquarters: p.Headquarters,
	}
}
