package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/resolver"
	"github.com/pranav/placement-helper/internal/types"
	"github.com/pranav/placement-helper/internal/videos"
)

// fakeExtractor returns canned job details and records the description it saw.
type fakeExtractor struct {
	details      *types.JobDetails
	err          error
	descriptions []string
}

func (f *fakeExtractor) ExtractJobDetails(_ context.Context, jobDescription string) (*types.JobDetails, error) {
	f.descriptions = append(f.descriptions, jobDescription)
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

// fakeVideoSearcher records search arguments and returns canned candidates.
type fakeVideoSearcher struct {
	items      []types.VideoCandidate
	err        error
	company    string
	jobTitle   string
	maxResults int
}

func (f *fakeVideoSearcher) Search(_ context.Context, company, jobTitle string, maxResults int) ([]types.VideoCandidate, error) {
	f.company = company
	f.jobTitle = jobTitle
	f.maxResults = maxResults
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func postJSON(t *testing.T, s *Server, target, payload string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

const sampleJobDescription = "We are hiring a Backend Engineer at Stripe to build payment infrastructure in Go."

func TestHandleJobQuery(t *testing.T) {
	extractor := &fakeExtractor{details: &types.JobDetails{
		CompanyName:    "Stripe",
		JobTitle:       "Backend Engineer",
		RequiredSkills: []string{"Go"},
	}}
	res := &fakeResolver{result: resolver.Result{Success: true, Profile: testProfile("Stripe")}}
	s := &Server{extractor: extractor, resolver: res}

	rec, body := postJSON(t, s, "/api/jobs/query",
		`{"job_description": "`+sampleJobDescription+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, []string{sampleJobDescription}, extractor.descriptions)

	details := body["job_details"].(map[string]any)
	assert.Equal(t, "Stripe", details["company_name"])
	assert.Equal(t, "Backend Engineer", details["job_title"])

	// The extracted company is resolved in the same round trip.
	assert.Equal(t, []string{"Stripe"}, res.names)
	company := body["company_info"].(map[string]any)
	assert.Equal(t, "Stripe", company["name"])
}

func TestHandleJobQueryRejectsShortDescription(t *testing.T) {
	extractor := &fakeExtractor{}
	s := &Server{extractor: extractor}

	rec, body := postJSON(t, s, "/api/jobs/query", `{"job_description": "too short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, extractor.descriptions)
}

func TestHandleJobQueryRejectsInvalidBody(t *testing.T) {
	s := &Server{extractor: &fakeExtractor{}}

	rec, body := postJSON(t, s, "/api/jobs/query", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestHandleJobQueryExtractionFailure(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("model returned malformed output")}
	s := &Server{extractor: extractor}

	rec, body := postJSON(t, s, "/api/jobs/query",
		`{"job_description": "`+sampleJobDescription+`"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "failed to extract job details")
}

func TestHandleJobQueryUnconfigured(t *testing.T) {
	s := &Server{}

	rec, body := postJSON(t, s, "/api/jobs/query",
		`{"job_description": "`+sampleJobDescription+`"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, body["error"], "GEMINI_API_KEY")
}

func TestHandleVideoSearch(t *testing.T) {
	vs := &fakeVideoSearcher{items: []types.VideoCandidate{
		{VideoID: "abc123", Title: "Google interview experience", ChannelTitle: "Tech Careers"},
		{VideoID: "def456", Title: "Google interview questions", ChannelTitle: "Prep Hub"},
	}}
	s := &Server{videos: vs}

	rec, body := doRequest(t, s, http.MethodGet,
		"/api/job/youtube-search?company=Google&job_title=Software+Engineer&maxResults=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Google", vs.company)
	assert.Equal(t, "Software Engineer", vs.jobTitle)
	assert.Equal(t, 5, vs.maxResults)

	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "abc123", items[0].(map[string]any)["videoId"])

	pageInfo := body["pageInfo"].(map[string]any)
	assert.Equal(t, float64(2), pageInfo["totalResults"])
}

func TestHandleVideoSearchLegacyQueryParam(t *testing.T) {
	vs := &fakeVideoSearcher{}
	s := &Server{videos: vs}

	rec, _ := doRequest(t, s, http.MethodGet, "/api/job/youtube-search?query=Netflix")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Netflix", vs.company)
	assert.Equal(t, videos.DefaultMaxResults, vs.maxResults)
}

func TestHandleVideoSearchRejectsEmptyQuery(t *testing.T) {
	vs := &fakeVideoSearcher{err: videos.ErrEmptyQuery}
	s := &Server{videos: vs}

	rec, body := doRequest(t, s, http.MethodGet, "/api/job/youtube-search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestHandleVideoSearchUnconfigured(t *testing.T) {
	s := &Server{}

	rec, body := doRequest(t, s, http.MethodGet, "/api/job/youtube-search?company=Google")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, body["error"], "GOOGLE_API_KEY")
}
