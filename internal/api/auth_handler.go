package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillstack/quill-api/internal/api/shared"
	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/service/auth"
	"github.com/quillstack/quill-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Signup handles the /user/signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse and validate request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Create user entity
	user, err := domain.NewUser(req.Email, req.Password, req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Hash password before it reaches the store
	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	// Store user. The unique constraint on email is the existence check;
	// any other creation failure keeps the API's historical 403 message.
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusForbidden, msgUserExists)
			return
		}
		slog.Error("failed to create user", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusForbidden, msgSignupStoreFailed)
		return
	}

	// Generate token
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{JWT: token})
}

// Signin handles the /user/signin endpoint.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest

	// Parse and validate request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Look up user by email
	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusForbidden, msgUserNotFound)
			return
		}
		slog.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	// Verify password using the injected verifier
	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, GetSafeErrorMessage(auth.ErrInvalidCredentials))
		return
	}

	// Generate token
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{JWT: token})
}
