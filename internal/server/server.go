// Package server provides the HTTP REST API for the placement helper.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pranav/placement-helper/internal/config"
	"github.com/pranav/placement-helper/internal/dataset"
	"github.com/pranav/placement-helper/internal/db"
	"github.com/pranav/placement-helper/internal/llm"
	"github.com/pranav/placement-helper/internal/resolver"
	"github.com/pranav/placement-helper/internal/search"
	"github.com/pranav/placement-helper/internal/server/middleware"
	"github.com/pranav/placement-helper/internal/server/ratelimit"
	"github.com/pranav/placement-helper/internal/sources"
	"github.com/pranav/placement-helper/internal/types"
	"github.com/pranav/placement-helper/internal/videos"
)

// CompanyResolver resolves a company name to a full profile.
type CompanyResolver interface {
	Resolve(ctx context.Context, name string) resolver.Result
}

// CompanySearcher serves listing and autocomplete queries.
type CompanySearcher interface {
	Search(ctx context.Context, query string) []types.SearchResult
	List(ctx context.Context, limit, offset int) []types.SearchResult
}

// VideoSearcher finds interview-preparation videos for a company and job title.
type VideoSearcher interface {
	Search(ctx context.Context, company, jobTitle string, maxResults int) ([]types.VideoCandidate, error)
}

// JobExtractor pulls structured job details out of a free-text description.
type JobExtractor interface {
	ExtractJobDetails(ctx context.Context, jobDescription string) (*types.JobDetails, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	loader      *dataset.Loader
	rateLimiter *ratelimit.Limiter

	resolver  CompanyResolver
	search    CompanySearcher
	videos    VideoSearcher
	extractor JobExtractor
	llmClient llm.Client

	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:     database,
		loader: dataset.NewLoader(cfg.DatasetPath),
	}

	// Resolution cascade: dataset first, then the external sources in
	// fixed priority order.
	client := sources.NewClient(cfg.SourceTimeout)
	s.resolver = resolver.New(database, sources.NewDatasetAdapter(s.loader),
		sources.NewSerpAPIAdapter(client, cfg.SerpAPIKey),
		sources.NewWikidataAdapter(client),
		sources.NewWikipediaAdapter(client),
		sources.NewDuckDuckGoAdapter(client),
	)
	s.search = search.New(database, s.loader)

	if cfg.GoogleAPIKey != "" {
		yt, err := videos.NewYouTubeClient(ctx, cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube client: %w", err)
		}
		s.videos = videos.NewEngine(yt)
	}

	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, llm.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.llmClient = gemini
		s.extractor = llm.NewExtractor(gemini)
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // resolution cascades several sources
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires the API endpoints.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Company endpoints
	mux.HandleFunc("GET /api/company", s.handleCompanyList)
	mux.HandleFunc("GET /api/company/search/{query}", s.handleCompanySearch)
	mux.HandleFunc("GET /api/company/{name}", s.handleCompanyGet)

	// Job endpoints
	mux.HandleFunc("POST /api/jobs/query", s.handleJobQuery)
	mux.HandleFunc("GET /api/job/youtube-search", s.handleVideoSearch)

	// User endpoints
	mux.HandleFunc("POST /api/users/register", s.handleRegister)
	mux.HandleFunc("POST /api/users/login", s.handleLogin)
	if s.jwtService != nil {
		requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(s.handleCurrentUser)))
	}

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Warm the dataset so the first resolution does not pay the load cost.
	go func() {
		s.loader.Load(context.Background())
		log.Printf("dataset: %s", s.loader.Stats(context.Background()))
	}()

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleCurrentUser returns the profile of the authenticated user.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes an error JSON response with the standard envelope
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is client-controlled unless set by a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"success":   false,
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	writeJSON(w, http.StatusTooManyRequests, response)
}
