package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medchart/medchart-api/internal/api"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/mocks"
	"github.com/medchart/medchart-api/internal/service/auth"
	"github.com/medchart/medchart-api/internal/validation"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := domain.NewUser("alice", "alice@example.com", "")
		authService := &mocks.MockAuthService{
			RegisterFn: func(ctx context.Context, data validation.RegistrationData) (*domain.User, error) {
				assert.Equal(t, "alice", data.Username)
				return user, nil
			},
		}
		handler := api.NewAuthHandler(authService)

		rec := postJSON(t, handler.Register, "/api/auth/register", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Str0ng!pass",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp api.RegisterResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, user.ID.String(), resp.User.ID)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("validation failure returns field errors", func(t *testing.T) {
		t.Parallel()
		authService := &mocks.MockAuthService{
			RegisterFn: func(ctx context.Context, data validation.RegistrationData) (*domain.User, error) {
				return nil, validation.FieldErrors{"password": "Password must be at least 8 characters"}
			},
		}
		handler := api.NewAuthHandler(authService)

		rec := postJSON(t, handler.Register, "/api/auth/register", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "weak",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Password must be at least 8 characters", resp.Errors["password"])
	})

	t.Run("username conflict", func(t *testing.T) {
		t.Parallel()
		authService := &mocks.MockAuthService{
			RegisterFn: func(ctx context.Context, data validation.RegistrationData) (*domain.User, error) {
				return nil, auth.ErrUsernameTaken
			},
		}
		handler := api.NewAuthHandler(authService)

		rec := postJSON(t, handler.Register, "/api/auth/register", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "Str0ng!pass",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Username already exists", resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&mocks.MockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := domain.NewUser("alice", "alice@example.com", "")
		authService := &mocks.MockAuthService{
			LoginFn: func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "Str0ng!pass", password)
				return &auth.LoginResult{Token: "signed-token", User: user}, nil
			},
		}
		handler := api.NewAuthHandler(authService)

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"username": "alice",
			"password": "Str0ng!pass",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("missing credentials rejected before the service", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&mocks.MockAuthService{})

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"username": "alice",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Username and password are required", resp.Error)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		authService := &mocks.MockAuthService{
			LoginFn: func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
				return nil, auth.ErrInvalidCredentials
			},
		}
		handler := api.NewAuthHandler(authService)

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Invalid username or password", resp.Error)
	})
}
