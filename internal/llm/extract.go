package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pranav/placement-helper/internal/schemas"
	"github.com/pranav/placement-helper/internal/types"
)

const extractionPreamble = `You are an expert job posting parser. Extract structured details from the job description below.
COPY TEXT VERBATIM where possible - do not paraphrase or invent information.
If a field is not present in the text, omit it entirely.

Return ONLY valid JSON matching this exact structure:
{
  "company_name": string (required),
  "job_title": string (required),
  "location": string,
  "experience_level": string,
  "required_skills": []string,
  "responsibilities": []string,
  "qualifications": []string,
  "salary_range": string
}

Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// Extractor turns free-text job descriptions into validated JobDetails.
type Extractor struct {
	client Client
}

// NewExtractor creates an extractor over an LLM client.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractJobDetails prompts the model and validates its output against the
// job-details schema before decoding it.
func (e *Extractor) ExtractJobDetails(ctx context.Context, jobDescription string) (*types.JobDetails, error) {
	prompt := buildExtractionPrompt(jobDescription)

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("job-details extraction failed: %w", err)
	}

	if err := schemas.ValidateJobDetails(raw); err != nil {
		return nil, fmt.Errorf("model returned invalid job details: %w", err)
	}

	var details types.JobDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("failed to decode job details: %w", err)
	}
	return &details, nil
}

func buildExtractionPrompt(jobDescription string) string {
	var sb strings.Builder
	sb.WriteString(extractionPreamble)
	sb.WriteString("\n\nJob description:\n\"\"\"\n")
	sb.WriteString(strings.TrimSpace(jobDescription))
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
