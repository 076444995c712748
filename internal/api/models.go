package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"required,min=1"`
}

// SigninRequest defines the payload for the user signin endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// JWT is the signed identity token used for API authorization.
	JWT string `json:"jwt"`
}

// CreatePostRequest defines the payload for the post creation endpoint.
type CreatePostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreatePostResponse defines the successful response for post creation.
type CreatePostResponse struct {
	ID uuid.UUID `json:"id"`
}

// UpdatePostRequest defines the payload for the post update endpoint.
// Title and content are optional; absent fields leave the stored values
// unchanged.
type UpdatePostRequest struct {
	ID      uuid.UUID `json:"id"      validate:"required"`
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
}

// UpdatePostResponse defines the successful response for post updates.
type UpdatePostResponse struct {
	Msg string `json:"msg"`
}

// AuthorResponse is the author projection embedded in post responses.
type AuthorResponse struct {
	Name string `json:"name"`
}

// GetPostResponse defines the response for fetching a single post.
type GetPostResponse struct {
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Author  AuthorResponse `json:"author"`
}

// PostListItem is one element of the bulk post listing response.
type PostListItem struct {
	ID      uuid.UUID      `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Author  AuthorResponse `json:"author"`
}
