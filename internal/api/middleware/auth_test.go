package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstack/quill-api/internal/mocks"
	"github.com/quillstack/quill-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			authHeader: "just-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "wrapped invalid token",
			authHeader:  "Bearer bad-token",
			validateErr: fmt.Errorf("parsing claims: %w", auth.ErrInvalidToken),
			wantStatus:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				Claims:      &auth.Claims{UserID: userID},
				ValidateErr: tt.validateErr,
			}
			middleware := NewAuthMiddleware(jwtService)

			nextCalled := false
			var gotUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				id, ok := GetUserID(r)
				require.True(t, ok)
				gotUserID = id
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/blog", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantNext {
				assert.Equal(t, userID, gotUserID)
			}
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req)
	assert.False(t, ok)
}
