package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lightbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func TestSignup(t *testing.T) {
	postRepo, userRepo := noopStubs()
	var created *models.User
	userRepo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		created = u
		return nil
	}
	_, app := newTestServer(postRepo, userRepo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "consumer", user["role"])
	assert.NotContains(t, user, "password")

	require.NotNil(t, created)
	assert.Equal(t, models.RoleConsumer, created.Role)
	assert.NotEqual(t, "secret123", created.Password, "the password is stored hashed")
	assert.NotEmpty(t, created.AvatarURL)
}

func TestSignupConflicts(t *testing.T) {
	postRepo, userRepo := noopStubs()
	userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "taken@example.com" {
			return &models.User{ID: 2, Email: email}, nil
		}
		return nil, nil
	}
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "taken" {
			return &models.User{ID: 3, Username: username}, nil
		}
		return nil, nil
	}
	_, app := newTestServer(postRepo, userRepo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "newname", "email": "taken@example.com", "password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already registered", decodeBody(t, resp)["error"])

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "taken", "email": "new@example.com", "password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already taken", decodeBody(t, resp)["error"])
}

func TestSignupValidation(t *testing.T) {
	postRepo, userRepo := noopStubs()
	_, app := newTestServer(postRepo, userRepo)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing fields", map[string]string{"username": "alice"}},
		{"short username", map[string]string{"username": "ab", "email": "a@b.com", "password": "secret123"}},
		{"bad email", map[string]string{"username": "alice", "email": "nope", "password": "secret123"}},
		{"short password", map[string]string{"username": "alice", "email": "a@b.com", "password": "abc"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	postRepo, userRepo := noopStubs()
	userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "alice@example.com" {
			return &models.User{ID: 1, Username: "alice", Email: email, Password: string(hash)}, nil
		}
		return nil, nil
	}
	_, app := newTestServer(postRepo, userRepo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decodeBody(t, resp)["token"])

	// Wrong password and unknown email produce the same response.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ghost@example.com", "password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	postRepo, userRepo := noopStubs()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Role: models.RoleCreator}, nil
	}
	srv, app := newTestServer(postRepo, userRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := srv.generateToken(1, models.RoleCreator)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user, ok := decodeBody(t, resp)["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
}

func TestMeVanishedUser(t *testing.T) {
	postRepo, userRepo := noopStubs()
	userRepo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
		return nil, nil
	}
	srv, app := newTestServer(postRepo, userRepo)

	token, err := srv.generateToken(1, models.RoleConsumer)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User no longer exists", decodeBody(t, resp)["error"])
}

func TestCreateCreator(t *testing.T) {
	postRepo, userRepo := noopStubs()
	var created *models.User
	userRepo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 9
		created = u
		return nil
	}
	_, app := newTestServer(postRepo, userRepo)

	body := map[string]string{
		"username": "studio", "email": "studio@example.com", "password": "secret123",
	}

	// No secret header: rejected before any work happens.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin/create-creator", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, created)

	req := jsonRequest(t, http.MethodPost, "/api/admin/create-creator", body)
	req.Header.Set("X-Admin-Secret", "test-admin-secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created)
	assert.Equal(t, models.RoleCreator, created.Role)
}
