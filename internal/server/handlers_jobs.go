// Package server provides the HTTP REST API for the placement helper.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pranav/placement-helper/internal/types"
	"github.com/pranav/placement-helper/internal/videos"
)

// jobQueryResponse is the envelope for POST /api/jobs/query.
type jobQueryResponse struct {
	Success     bool                  `json:"success"`
	JobDetails  *types.JobDetails     `json:"job_details,omitempty"`
	CompanyInfo *types.CompanyProfile `json:"company_info,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
	Error       string                `json:"error,omitempty"`
}

// videoPageInfo mirrors the page metadata shape of the YouTube API.
type videoPageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// videoSearchResponse is the envelope for GET /api/job/youtube-search.
type videoSearchResponse struct {
	Success       bool                   `json:"success"`
	Items         []types.VideoCandidate `json:"items"`
	PageInfo      videoPageInfo          `json:"pageInfo"`
	NextPageToken string                 `json:"nextPageToken,omitempty"`
}

// handleJobQuery extracts structured details from a pasted job description and
// resolves the extracted company in one round trip.
func (s *Server) handleJobQuery(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "job extraction is not configured: GEMINI_API_KEY is not set")
		return
	}

	var req types.JobQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	details, err := s.extractor.ExtractJobDetails(r.Context(), req.JobDescription)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to extract job details: "+err.Error())
		return
	}

	resp := jobQueryResponse{
		Success:    true,
		JobDetails: details,
		Timestamp:  time.Now().UTC(),
	}
	if details.CompanyName != "" {
		res := s.resolver.Resolve(r.Context(), details.CompanyName)
		resp.CompanyInfo = res.Profile
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleVideoSearch handles GET /api/job/youtube-search. Accepts explicit
// company and job_title parameters; a bare query parameter is treated as the
// company term for older clients.
func (s *Server) handleVideoSearch(w http.ResponseWriter, r *http.Request) {
	if s.videos == nil {
		writeError(w, http.StatusServiceUnavailable, "video search is not configured: GOOGLE_API_KEY is not set")
		return
	}

	params := r.URL.Query()
	company := params.Get("company")
	jobTitle := params.Get("job_title")
	if company == "" && jobTitle == "" {
		company = params.Get("query")
	}
	maxResults := queryInt(r, "maxResults", videos.DefaultMaxResults)

	items, err := s.videos.Search(r.Context(), company, jobTitle, maxResults)
	if err != nil {
		if errors.Is(err, videos.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "video search failed: "+err.Error())
		return
	}
	if items == nil {
		items = []types.VideoCandidate{}
	}

	writeJSON(w, http.StatusOK, videoSearchResponse{
		Success: true,
		Items:   items,
		PageInfo: videoPageInfo{
			TotalResults:   len(items),
			ResultsPerPage: len(items),
		},
	})
}
