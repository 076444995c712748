package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/quillstack/quill-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrInvalidEntity if the author does not exist
	// (foreign key violation).
	Create(ctx context.Context, post *domain.Post) error

	// UpdateOwned updates the title and/or content of the post matching
	// both the post ID and the author ID. A nil title or content leaves
	// the corresponding column unchanged.
	//
	// The compound predicate is the ownership check: a mismatched author
	// matches zero rows. The number of affected rows is returned so the
	// caller decides how to treat a no-op.
	UpdateOwned(ctx context.Context, postID, authorID uuid.UUID, title, content *string) (int64, error)

	// GetWithAuthor retrieves a post by ID projected together with its
	// author's display name. Returns ErrPostNotFound if no post matches.
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error)

	// ListWithAuthors retrieves all posts projected with their authors'
	// display names, in the order the store returns them.
	ListWithAuthors(ctx context.Context) ([]*domain.PostWithAuthor, error)

	// WithTx returns a new PostStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) PostStore
}
