package sources

import (
	"context"
	"strings"
	"time"

	"github.com/pranav/placement-helper/internal/types"
)

// CuratedAdapter serves hand-authored profiles for well-known companies.
// It never fails and needs no I/O, which makes it the penultimate fallback
// when every live source comes up empty. It is also the single home for
// per-company overrides: the resolver consults the same table during its
// completion pass so special-casing is never scattered across adapters.
type CuratedAdapter struct{}

// NewCuratedAdapter creates the curated static adapter.
func NewCuratedAdapter() *CuratedAdapter {
	return &CuratedAdapter{}
}

// Name implements Adapter.
func (a *CuratedAdapter) Name() string { return "curated" }

// TryResolve matches the normalized name against the curated table by
// substring in either direction.
func (a *CuratedAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	entry := LookupCurated(name)
	if entry == nil {
		return nil, nil
	}
	p := entry.Profile()
	return p, nil
}

// LookupCurated finds a curated entry whose key is contained in (or contains)
// the normalized query. Returns nil when no entry matches.
func LookupCurated(name string) *CuratedEntry {
	normalized := types.NormalizeCompanyName(name)
	if normalized == "" {
		return nil
	}
	for i := range curatedTable {
		entry := &curatedTable[i]
		for _, key := range append([]string{entry.Key}, entry.Aliases...) {
			if normalized == key || containsWord(normalized, key) {
				return entry
			}
			if len(key) >= 4 && strings.Contains(normalized, key) {
				return entry
			}
		}
	}
	return nil
}

func containsWord(normalized, key string) bool {
	for _, tok := range types.NameTokens(normalized) {
		if tok == key {
			return true
		}
	}
	return false
}

// CuratedEntry is one hand-authored company record.
type CuratedEntry struct {
	Key          string
	Aliases      []string
	Name         string
	Description  string
	Industry     string
	Founded      string
	Headquarters string
	Employees    string
	Revenue      string
	Website      string
	Values       []string
	ProsTips     []string // interview tips
	Rounds       []string
	Questions    []string
	Products     []string
}

// Profile builds a full profile from the entry.
func (e *CuratedEntry) Profile() *types.CompanyProfile {
	p := types.NewProfile(e.Name, types.SourceCurated)
	p.Description = e.Description
	p.Industry = e.Industry
	p.Founded = e.Founded
	p.Headquarters = e.Headquarters
	p.EmployeeCount = e.Employees
	p.Revenue = e.Revenue
	p.Website = e.Website
	p.Products = append([]string(nil), e.Products...)
	if len(e.Values) > 0 {
		p.Culture = &types.Culture{Values: append([]string(nil), e.Values...)}
	}
	if len(e.Rounds) > 0 || len(e.ProsTips) > 0 || len(e.Questions) > 0 {
		p.InterviewProcess = &types.InterviewProcess{
			Rounds:          append([]string(nil), e.Rounds...),
			TypicalDuration: "2-6 weeks",
			Tips:            append([]string(nil), e.ProsTips...),
			CommonQuestions: append([]string(nil), e.Questions...),
		}
	}
	p.LastUpdated = time.Now()
	return p
}

var curatedTable = []CuratedEntry{
	{
		Key:          "etsy",
		Name:         "Etsy",
		Description:  "Etsy is an American e-commerce company focused on handmade or vintage items and craft supplies, connecting independent sellers with buyers around the world.",
		Industry:     "E-commerce",
		Founded:      "2005",
		Headquarters: "Brooklyn, New York, United States",
		Employees:    "2,000+ employees",
		Revenue:      "$2.7 billion (2023)",
		Website:      "https://www.etsy.com",
		Values:       []string{"Keep commerce human", "Craftsmanship", "Sustainability", "Community"},
		Rounds:       []string{"Recruiter screen", "Technical phone interview", "Onsite loop with pairing exercise", "Values interview"},
		ProsTips:     []string{"Expect a practical pairing exercise over puzzle questions", "Be ready to talk about marketplace dynamics"},
		Questions:    []string{"How would you improve search for handmade goods?", "Tell us about a time you advocated for a user."},
		Products:     []string{"Etsy Marketplace", "Etsy Payments", "Etsy Ads"},
	},
	{
		Key:          "google",
		Name:         "Google",
		Description:  "Google is an American multinational technology company specializing in internet-related services and products, including search, advertising, cloud computing, software and hardware.",
		Industry:     "Technology",
		Founded:      "1998",
		Headquarters: "Mountain View, California, United States",
		Employees:    "180,000+ employees",
		Revenue:      "$305 billion (2023)",
		Website:      "https://www.google.com",
		Values:       []string{"Focus on the user", "Innovation", "Openness", "Data-driven decisions"},
		Rounds:       []string{"Recruiter screen", "Phone screen with coding", "Onsite: 4-5 interviews covering coding, system design and leadership"},
		ProsTips:     []string{"Practice algorithm questions on a whiteboard or shared doc", "Prepare concrete examples for leadership questions"},
		Questions:    []string{"Design a URL shortener.", "Find the k most frequent words in a stream."},
		Products:     []string{"Google Search", "YouTube", "Android", "Google Cloud", "Workspace"},
	},
	{
		Key:          "microsoft",
		Name:         "Microsoft",
		Description:  "Microsoft is an American multinational technology corporation producing software, cloud services, devices and gaming platforms, best known for Windows, Office and Azure.",
		Industry:     "Technology",
		Founded:      "1975",
		Headquarters: "Redmond, Washington, United States",
		Employees:    "220,000+ employees",
		Revenue:      "$211 billion (2023)",
		Website:      "https://www.microsoft.com",
		Values:       []string{"Growth mindset", "Customer obsession", "Diversity and inclusion", "One Microsoft"},
		Rounds:       []string{"Recruiter screen", "Technical phone interview", "Virtual onsite loop of 4 interviews", "As-appropriate interview"},
		ProsTips:     []string{"Interviewers probe for growth mindset; reflect on failures honestly"},
		Questions:    []string{"Reverse a linked list.", "How would you design OneDrive sync?"},
		Products:     []string{"Windows", "Office 365", "Azure", "Xbox", "LinkedIn"},
	},
	{
		Key:          "infosys",
		Name:         "Infosys",
		Description:  "Infosys is an Indian multinational information technology company providing business consulting, information technology and outsourcing services.",
		Industry:     "Information Technology",
		Founded:      "1981",
		Headquarters: "Bangalore, Karnataka, India",
		Employees:    "300,000+ employees",
		Revenue:      "$18 billion (2023)",
		Website:      "https://www.infosys.com",
		Values:       []string{"Client value", "Leadership by example", "Integrity and transparency", "Excellence"},
		Rounds:       []string{"Online aptitude test", "Technical interview", "HR interview"},
		ProsTips:     []string{"Brush up on programming fundamentals and SQL", "Communication skills carry significant weight"},
		Questions:    []string{"Explain the difference between an abstract class and an interface.", "Write a query to find duplicate rows."},
		Products:     []string{"Finacle", "Infosys Nia", "EdgeVerve"},
	},
	{
		Key:          "amazon",
		Name:         "Amazon",
		Description:  "Amazon is an American multinational technology company focusing on e-commerce, cloud computing, digital streaming and artificial intelligence.",
		Industry:     "E-commerce",
		Founded:      "1994",
		Headquarters: "Seattle, Washington, United States",
		Employees:    "1,500,000+ employees",
		Revenue:      "$574 billion (2023)",
		Website:      "https://www.amazon.com",
		Values:       []string{"Customer obsession", "Ownership", "Invent and simplify", "Bias for action", "Frugality"},
		Rounds:       []string{"Online assessment", "Phone screen", "Onsite loop of 4-5 interviews including the bar raiser"},
		ProsTips:     []string{"Prepare STAR stories for every leadership principle", "Expect behavioral questions in every technical round"},
		Questions:    []string{"Tell me about a time you disagreed with your manager.", "Design Amazon's product recommendation system."},
		Products:     []string{"Amazon.com", "AWS", "Prime Video", "Alexa", "Kindle"},
	},
	{
		Key:          "apple",
		Name:         "Apple",
		Description:  "Apple is an American multinational technology company that designs, develops and sells consumer electronics, computer software and online services.",
		Industry:     "Technology",
		Founded:      "1976",
		Headquarters: "Cupertino, California, United States",
		Employees:    "160,000+ employees",
		Revenue:      "$383 billion (2023)",
		Website:      "https://www.apple.com",
		Values:       []string{"Design excellence", "Privacy", "Accessibility", "Environment"},
		Rounds:       []string{"Recruiter screen", "Technical phone interviews", "Team-specific onsite loop"},
		ProsTips:     []string{"Interviews are team-specific; research the team's domain deeply"},
		Questions:    []string{"How does memory management work on iOS?", "Walk through the design of a feature you shipped."},
		Products:     []string{"iPhone", "Mac", "iPad", "Apple Watch", "App Store"},
	},
	{
		Key:          "netflix",
		Name:         "Netflix",
		Description:  "Netflix is an American subscription streaming service and production company offering films and television series across a wide variety of genres.",
		Industry:     "Entertainment",
		Founded:      "1997",
		Headquarters: "Los Gatos, California, United States",
		Employees:    "13,000+ employees",
		Revenue:      "$34 billion (2023)",
		Website:      "https://www.netflix.com",
		Values:       []string{"Freedom and responsibility", "Context, not control", "Candor", "High performance"},
		Rounds:       []string{"Recruiter screen", "Technical screen", "Onsite loop with culture interview"},
		ProsTips:     []string{"Read the culture memo before interviewing; it comes up in every loop"},
		Questions:    []string{"How would you design Netflix's video CDN?", "Describe a time you gave hard feedback."},
		Products:     []string{"Netflix streaming", "Netflix Games"},
	},
	{
		Key:          "tcs",
		Aliases:      []string{"tata consultancy services", "tata consultancy"},
		Name:         "Tata Consultancy Services",
		Description:  "Tata Consultancy Services is an Indian multinational information technology services and consulting company, part of the Tata Group.",
		Industry:     "Information Technology",
		Founded:      "1968",
		Headquarters: "Mumbai, Maharashtra, India",
		Employees:    "600,000+ employees",
		Revenue:      "$29 billion (2023)",
		Website:      "https://www.tcs.com",
		Values:       []string{"Integrity", "Responsibility", "Excellence", "Pioneering", "Unity"},
		Rounds:       []string{"TCS NQT aptitude test", "Technical interview", "Managerial interview", "HR interview"},
		ProsTips:     []string{"Aptitude test performance gates the interviews; practice quantitative sections"},
		Questions:    []string{"What is normalization in databases?", "Explain OOP concepts with examples."},
		Products:     []string{"TCS BaNCS", "ignio", "TCS iON"},
	},
}
