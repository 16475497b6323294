package resolver

import (
	"github.com/pranav/placement-helper/internal/types"
)

// Merge folds next into base with first-non-empty-wins precedence: a field
// already holding real data in base is never overwritten, and next only fills
// fields base left empty or at a sentinel. Slices are unioned preserving
// order of first appearance. Merge never mutates next; base is modified in
// place and returned. A nil base returns a copy of next.
func Merge(base, next *types.CompanyProfile) *types.CompanyProfile {
	if next == nil {
		return base
	}
	if base == nil {
		clone := *next
		return &clone
	}

	fillScalar(&base.Name, next.Name)
	fillScalar(&base.Description, next.Description)
	fillScalar(&base.Industry, next.Industry)
	fillScalar(&base.Founded, next.Founded)
	fillScalar(&base.Headquarters, next.Headquarters)
	fillScalar(&base.EmployeeCount, next.EmployeeCount)
	fillScalar(&base.Revenue, next.Revenue)
	fillScalar(&base.Website, next.Website)

	base.ExtendedDescription = unionStrings(base.ExtendedDescription, next.ExtendedDescription)
	base.KeyPeople = unionStrings(base.KeyPeople, next.KeyPeople)
	base.BusinessSegments = unionStrings(base.BusinessSegments, next.BusinessSegments)
	base.Technologies = unionStrings(base.Technologies, next.Technologies)
	base.Products = unionStrings(base.Products, next.Products)
	base.Services = unionStrings(base.Services, next.Services)

	base.Culture = mergeCulture(base.Culture, next.Culture)
	base.InterviewProcess = mergeInterviewProcess(base.InterviewProcess, next.InterviewProcess)
	if base.HiringProcess == nil {
		base.HiringProcess = next.HiringProcess
	}
	if base.CareerGrowth == nil {
		base.CareerGrowth = next.CareerGrowth
	}

	return base
}

func fillScalar(dst *string, src string) {
	if !types.IsSpecified(*dst) && types.IsSpecified(src) {
		*dst = src
	}
}

func unionStrings(base, next []string) []string {
	if len(next) == 0 {
		return base
	}
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range next {
		if !seen[v] {
			base = append(base, v)
			seen[v] = true
		}
	}
	return base
}

func mergeCulture(base, next *types.Culture) *types.Culture {
	if next == nil {
		return base
	}
	if base == nil {
		clone := *next
		return &clone
	}
	if base.WorkLifeBalance == "" {
		base.WorkLifeBalance = next.WorkLifeBalance
	}
	if base.LearningOpportunities == "" {
		base.LearningOpportunities = next.LearningOpportunities
	}
	if base.TeamEnvironment == "" {
		base.TeamEnvironment = next.TeamEnvironment
	}
	base.Values = unionStrings(base.Values, next.Values)
	return base
}

func mergeInterviewProcess(base, next *types.InterviewProcess) *types.InterviewProcess {
	if next == nil {
		return base
	}
	if base == nil {
		clone := *next
		return &clone
	}
	if len(base.Rounds) == 0 {
		base.Rounds = next.Rounds
	}
	if base.TypicalDuration == "" {
		base.TypicalDuration = next.TypicalDuration
	}
	base.Tips = unionStrings(base.Tips, next.Tips)
	base.CommonQuestions = unionStrings(base.CommonQuestions, next.CommonQuestions)
	return base
}
