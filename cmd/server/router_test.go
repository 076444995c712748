package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillstack/quill-api/internal/api"
	"github.com/quillstack/quill-api/internal/config"
	"github.com/quillstack/quill-api/internal/mocks"
	"github.com/quillstack/quill-api/internal/service/auth"
)

// newTestApplication wires an application around in-memory stores and a
// real JWT service so router tests exercise the full middleware chain.
func newTestApplication(t *testing.T) (*application, *mocks.MockUserStore, *mocks.MockPostStore) {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret: "router-test-secret-key-thats-long-enough",
	})
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	postStore := mocks.NewMockPostStore()

	app := &application{
		config:     &config.Config{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore:  userStore,
		postStore:  postStore,
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(bcrypt.MinCost),
	}
	return app, userStore, postStore
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := doJSON(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

// TestSignupSigninPostFlow walks the primary user journey through the
// assembled router: register, sign in, publish a post with the issued
// token, then read it back through the public endpoints.
func TestSignupSigninPostFlow(t *testing.T) {
	app, userStore, postStore := newTestApplication(t)
	router := app.setupRouter()

	// Signup issues a token immediately.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "", api.SignupRequest{
		Email:    "ada@example.com",
		Password: "secret1",
		Name:     "Ada",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var signupResp api.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &signupResp))
	assert.NotEmpty(t, signupResp.JWT)
	postStore.AuthorNames[userStore.LastUserID] = "Ada"

	// Signin with the same credentials issues a fresh token.
	rr = doJSON(t, router, http.MethodPost, "/api/v1/user/signin", "", api.SigninRequest{
		Email:    "ada@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var signinResp api.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &signinResp))
	require.NotEmpty(t, signinResp.JWT)
	token := signinResp.JWT

	// Create a post with the bearer token.
	rr = doJSON(t, router, http.MethodPost, "/api/v1/blog", token, api.CreatePostRequest{
		Title:   "First Post",
		Content: "Hello, world",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var createResp api.CreatePostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &createResp))

	post, ok := postStore.Posts[createResp.ID]
	require.True(t, ok, "created post should be persisted")
	assert.Equal(t, userStore.LastUserID, post.AuthorID)

	// Update the title, leaving content untouched.
	newTitle := "First Post, Revised"
	rr = doJSON(t, router, http.MethodPut, "/api/v1/blog", token, api.UpdatePostRequest{
		ID:    createResp.ID,
		Title: &newTitle,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updateResp api.UpdatePostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updateResp))
	assert.Equal(t, "Post updated successfully", updateResp.Msg)

	// Fetch the post back through the public read endpoint.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/blogs/blog/"+createResp.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var getResp api.GetPostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &getResp))
	assert.Equal(t, newTitle, getResp.Title)
	assert.Equal(t, "Hello, world", getResp.Content)
	assert.Equal(t, "Ada", getResp.Author.Name)

	// Bulk listing includes the post.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/blog/bulk", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var items []api.PostListItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, createResp.ID, items[0].ID)
}

func TestCORSHeaders(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/blog", nil)
		req.Header.Set("Origin", "https://blog.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("simple request carries allow-origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/bulk", nil)
		req.Header.Set("Origin", "https://blog.example.com")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/blog", "", api.CreatePostRequest{
		Title:   "No Token",
		Content: "should not land",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/blog", "not-a-valid-token", api.CreatePostRequest{
		Title:   "Bad Token",
		Content: "should not land",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSigninWrongPassword(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "", api.SignupRequest{
		Email:    "ada@example.com",
		Password: "secret1",
		Name:     "Ada",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/user/signin", "", api.SigninRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid credentials")
}

func TestDuplicateSignup(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	signup := api.SignupRequest{
		Email:    "ada@example.com",
		Password: "secret1",
		Name:     "Ada",
	}

	rr := doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "", signup)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "", signup)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "User already exists")
}
