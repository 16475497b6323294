package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav/placement-helper/internal/config"
)

func newAuthTestServer() *Server {
	userService := NewUserService(newFakeDB(), testPasswordConfig())
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	return &Server{
		userService: userService,
		jwtService:  jwtService,
		authHandler: NewAuthHandler(userService, jwtService),
	}
}

func TestRegisterEndpoint(t *testing.T) {
	s := newAuthTestServer()

	rec, body := postJSON(t, s, "/api/users/register",
		`{"name": "Pranav", "email": "pranav@example.com", "password": "correct-horse-battery"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "pranav@example.com", user["email"])
	// The password hash never leaves the db layer.
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	s := newAuthTestServer()
	payload := `{"name": "Pranav", "email": "pranav@example.com", "password": "correct-horse-battery"}`

	rec, _ := postJSON(t, s, "/api/users/register", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := postJSON(t, s, "/api/users/register", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body["error"], "already registered")
}

func TestRegisterEndpointValidation(t *testing.T) {
	s := newAuthTestServer()

	tests := []struct {
		name    string
		payload string
	}{
		{"missing email", `{"name": "Pranav", "password": "correct-horse-battery"}`},
		{"bad email", `{"name": "Pranav", "email": "not-an-email", "password": "correct-horse-battery"}`},
		{"short password", `{"name": "Pranav", "email": "pranav@example.com", "password": "short"}`},
		{"invalid body", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := postJSON(t, s, "/api/users/register", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	s := newAuthTestServer()

	rec, _ := postJSON(t, s, "/api/users/register",
		`{"name": "Pranav", "email": "pranav@example.com", "password": "correct-horse-battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := postJSON(t, s, "/api/users/login",
		`{"email": "pranav@example.com", "password": "correct-horse-battery"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	// The issued token is accepted by the validating side.
	claims, err := s.jwtService.ValidateToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, body["user"].(map[string]any)["id"], claims.UserID.String())
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	s := newAuthTestServer()

	rec, _ := postJSON(t, s, "/api/users/register",
		`{"name": "Pranav", "email": "pranav@example.com", "password": "correct-horse-battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := postJSON(t, s, "/api/users/login",
		`{"email": "pranav@example.com", "password": "wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", body["error"])
}

func TestCurrentUserEndpoint(t *testing.T) {
	s := newAuthTestServer()

	rec, body := postJSON(t, s, "/api/users/register",
		`{"name": "Pranav", "email": "pranav@example.com", "password": "correct-horse-battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := body["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	got := httptest.NewRecorder()
	s.routes().ServeHTTP(got, req)

	assert.Equal(t, http.StatusOK, got.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &me))
	assert.Equal(t, true, me["success"])
	assert.Equal(t, "pranav@example.com", me["user"].(map[string]any)["email"])
}

func TestCurrentUserEndpointRequiresToken(t *testing.T) {
	s := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
