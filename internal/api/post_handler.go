package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillstack/quill-api/internal/api/shared"
	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/store"
)

// PostHandler handles post-related API requests.
type PostHandler struct {
	postStore store.PostStore
	validator *validator.Validate
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore) *PostHandler {
	return &PostHandler{
		postStore: postStore,
		validator: validator.New(),
	}
}

// CreatePost handles POST /blog. Requires authentication; the created
// post's author is the user from the verified token, never the payload.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	post, err := domain.NewPost(userID, req.Title, req.Content)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		slog.Error("failed to create post", "error", err, "author_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatePostResponse{ID: post.ID})
}

// UpdatePost handles PUT /blog. The update is scoped to the post ID and
// the authenticated author, so an ownership mismatch matches zero rows.
// A zero-row update still answers 200 with the generic success message;
// the mismatch is only visible in the logs.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidInput)
		return
	}

	rows, err := h.postStore.UpdateOwned(r.Context(), req.ID, userID, req.Title, req.Content)
	if err != nil {
		slog.Error("failed to update post", "error", err, "post_id", req.ID, "author_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	if rows == 0 {
		slog.Warn("post update matched no rows",
			"post_id", req.ID,
			"author_id", userID)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdatePostResponse{Msg: "Post updated successfully"})
}

// GetPost handles GET /blogs/blog/{id}. Public; no authentication required.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, msgInvalidInput)
		return
	}

	post, err := h.postStore.GetWithAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgPostNotFound)
			return
		}
		slog.Error("failed to get post", "error", err, "post_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GetPostResponse{
		Title:   post.Title,
		Content: post.Content,
		Author:  AuthorResponse{Name: post.AuthorName},
	})
}

// ListPosts handles GET /blog/bulk. Public; returns all posts in store
// order with their authors' names.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.ListWithAuthors(r.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	items := make([]PostListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, PostListItem{
			ID:      post.ID,
			Title:   post.Title,
			Content: post.Content,
			Author:  AuthorResponse{Name: post.AuthorName},
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}
