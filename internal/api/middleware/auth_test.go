package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medchart/medchart-api/internal/api/middleware"
	"github.com/medchart/medchart-api/internal/mocks"
	"github.com/medchart/medchart-api/internal/service/auth"
)

// protectedProbe records whether the inner handler ran and what user ID it
// saw in the request context.
type protectedProbe struct {
	called bool
	userID uuid.UUID
	found  bool
}

func (p *protectedProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.userID, p.found = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func doAuthenticated(t *testing.T, jwtService *mocks.MockJWTService, authHeader string) (*httptest.ResponseRecorder, *protectedProbe) {
	t.Helper()
	probe := &protectedProbe{}
	mw := middleware.NewAuthMiddleware(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	mw.Authenticate(probe.handler()).ServeHTTP(rec, req)
	return rec, probe
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token passes the user ID through", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		jwtService := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				assert.Equal(t, "good-token", tokenString)
				return &auth.Claims{UserID: userID}, nil
			},
		}

		rec, probe := doAuthenticated(t, jwtService, "Bearer good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, probe.called)
		assert.True(t, probe.found)
		assert.Equal(t, userID, probe.userID)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		rec, probe := doAuthenticated(t, &mocks.MockJWTService{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization header required", errorMessage(t, rec))
		assert.False(t, probe.called)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()
		rec, probe := doAuthenticated(t, &mocks.MockJWTService{}, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid authorization format", errorMessage(t, rec))
		assert.False(t, probe.called)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		rec, probe := doAuthenticated(t, &mocks.MockJWTService{}, "Bearer")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, probe.called)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}

		rec, probe := doAuthenticated(t, jwtService, "Bearer stale-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token expired", errorMessage(t, rec))
		assert.False(t, probe.called)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}

		rec, probe := doAuthenticated(t, jwtService, "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", errorMessage(t, rec))
		assert.False(t, probe.called)
	})

	t.Run("unexpected validation failure", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: assert.AnError}

		rec, probe := doAuthenticated(t, jwtService, "Bearer token")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Authentication error", errorMessage(t, rec))
		assert.False(t, probe.called)
	})
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	userID, ok := middleware.GetUserID(req)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, userID)
}
