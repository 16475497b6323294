package types

import "github.com/go-playground/validator/v10"

// JobDetails is the structured information extracted from a free-text job
// description by the LLM extractor.
type JobDetails struct {
	CompanyName      string   `json:"company_name"`
	JobTitle         string   `json:"job_title"`
	Location         string   `json:"location,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	RequiredSkills   []string `json:"required_skills,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	SalaryRange      string   `json:"salary_range,omitempty"`
}

// JobQueryRequest is the POST /api/jobs/query payload.
type JobQueryRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=20"`
}

// Validate validates the JobQueryRequest using the validator.
func (r *JobQueryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// VideoSearchRequest carries the parameters of an interview-video search.
type VideoSearchRequest struct {
	Company    string `json:"company" validate:"required_without=JobTitle"`
	JobTitle   string `json:"job_title" validate:"required_without=Company"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=50"`
}

// Validate validates the VideoSearchRequest using the validator.
func (r *VideoSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
