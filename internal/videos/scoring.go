package videos

import (
	"strings"
	"time"

	"github.com/pranav/placement-helper/internal/types"
)

// Interview-vocabulary tiers, strongest first. Phrase hits in the title are
// worth double a hit in the description.
var (
	primaryKeywords = []string{
		"interview experience",
		"interview questions",
		"interview process",
		"interview tips",
	}
	secondaryKeywords = []string{
		"interview preparation",
		"mock interview",
		"hiring process",
		"how to prepare",
		"coding interview",
	}
	tertiaryKeywords = []string{
		"job interview",
		"career advice",
		"placement",
		"recruitment",
	}

	affinityChannelWords = []string{
		"career", "careers", "recruit", "interview", "placement", "jobs", "hr ",
	}

	promoKeywords = []string{
		"sponsored", "promo code", "discount", "coupon", "buy now",
		"limited offer", "enroll now", "% off",
	}
)

// scoreCandidate computes the relevance of one video for a company and job
// title. Higher is better; scores are comparable only within one search.
func scoreCandidate(c types.VideoCandidate, company, jobTitle string, now time.Time) float64 {
	title := strings.ToLower(c.Title)
	description := strings.ToLower(c.Description)
	channel := strings.ToLower(c.ChannelTitle)
	company = strings.ToLower(strings.TrimSpace(company))
	jobTitle = strings.ToLower(strings.TrimSpace(jobTitle))

	var score float64

	// Company-name match: full phrase, then per-word.
	if company != "" {
		if strings.Contains(title, company) {
			score += 8
		}
		if strings.Contains(description, company) {
			score += 4
		}
		for _, word := range strings.Fields(company) {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(title, word) {
				score += 2
			}
			if strings.Contains(description, word) {
				score += 1
			}
		}
	}

	// Job-title match: full phrase, then per-word.
	if jobTitle != "" {
		if strings.Contains(title, jobTitle) {
			score += 6
		}
		if strings.Contains(description, jobTitle) {
			score += 3
		}
		for _, word := range strings.Fields(jobTitle) {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(title, word) {
				score += 1.5
			}
			if strings.Contains(description, word) {
				score += 0.5
			}
		}
	}

	score += keywordTierScore(title, description, primaryKeywords, 5)
	score += keywordTierScore(title, description, secondaryKeywords, 3)
	score += keywordTierScore(title, description, tertiaryKeywords, 1.5)

	for _, word := range affinityChannelWords {
		if strings.Contains(channel, word) {
			score += 2
			break
		}
	}

	for _, word := range promoKeywords {
		if strings.Contains(title, word) || strings.Contains(description, word) {
			score -= 4
			break
		}
	}

	score += recencyScore(c.PublishedAt, now)
	return score
}

// keywordTierScore awards the tier weight for a title hit and half of it for
// a description hit, once per tier.
func keywordTierScore(title, description string, keywords []string, weight float64) float64 {
	var score float64
	titleHit, descHit := false, false
	for _, kw := range keywords {
		if !titleHit && strings.Contains(title, kw) {
			titleHit = true
		}
		if !descHit && strings.Contains(description, kw) {
			descHit = true
		}
	}
	if titleHit {
		score += weight
	}
	if descHit {
		score += weight / 2
	}
	return score
}

// recencyScore rewards fresh uploads and penalizes stale ones.
func recencyScore(published, now time.Time) float64 {
	if published.IsZero() {
		return 0
	}
	age := now.Sub(published)
	switch {
	case age < 365*24*time.Hour:
		return 2
	case age < 3*365*24*time.Hour:
		return 1
	case age > 5*365*24*time.Hour:
		return -1
	default:
		return 0
	}
}
