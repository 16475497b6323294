// Package server provides the HTTP REST API for the placement helper.
package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pranav/placement-helper/internal/search"
	"github.com/pranav/placement-helper/internal/types"
)

// companyResponse is the envelope for single-profile endpoints.
type companyResponse struct {
	Success bool                  `json:"success"`
	Data    *types.CompanyProfile `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// listResponse is the envelope for search and listing endpoints.
type listResponse struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Data    []types.SearchResult `json:"data"`
}

// handleCompanySearch handles GET /api/company/search/{query}.
func (s *Server) handleCompanySearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.PathValue("query"))
	if len(query) < search.MinQueryLen {
		writeError(w, http.StatusBadRequest, "search query must be at least 2 characters")
		return
	}

	results := s.search.Search(r.Context(), query)
	if results == nil {
		results = []types.SearchResult{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(results),
		Data:    results,
	})
}

// handleCompanyList handles GET /api/company.
func (s *Server) handleCompanyList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", search.DefaultLimit)
	offset := queryInt(r, "offset", 0)

	results := s.search.List(r.Context(), limit, offset)
	if results == nil {
		results = []types.SearchResult{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(results),
		Data:    results,
	})
}

// handleCompanyGet handles GET /api/company/{name}. Resolution never hard-fails:
// a degraded result still carries placeholder data, so the status stays 200 and
// the success flag tells the client what happened.
func (s *Server) handleCompanyGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	res := s.resolver.Resolve(r.Context(), name)
	if !res.Success && res.Profile == nil {
		// Only input validation changes the status code family.
		writeError(w, http.StatusBadRequest, res.Err)
		return
	}

	writeJSON(w, http.StatusOK, companyResponse{
		Success: res.Success,
		Data:    res.Profile,
		Error:   res.Err,
	})
}

// queryInt parses an integer query parameter, falling back on absent or
// unparseable values.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
