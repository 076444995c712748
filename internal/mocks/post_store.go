package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, post *domain.Post) error
	UpdateOwnedFn     func(ctx context.Context, postID, authorID uuid.UUID, title, content *string) (int64, error)
	GetWithAuthorFn   func(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error)
	ListWithAuthorsFn func(ctx context.Context) ([]*domain.PostWithAuthor, error)

	// Data for default implementation
	Posts       map[uuid.UUID]*domain.Post
	AuthorNames map[uuid.UUID]string
	CreateError error

	// CreateCalls counts invocations of Create, including failed ones.
	CreateCalls int
}

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts:       make(map[uuid.UUID]*domain.Post),
		AuthorNames: make(map[uuid.UUID]string),
	}
}

// Ensure MockPostStore implements store.PostStore interface
var _ store.PostStore = (*MockPostStore)(nil)

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Posts[post.ID] = post
	return nil
}

// UpdateOwned implements the PostStore interface
func (m *MockPostStore) UpdateOwned(
	ctx context.Context,
	postID, authorID uuid.UUID,
	title, content *string,
) (int64, error) {
	if m.UpdateOwnedFn != nil {
		return m.UpdateOwnedFn(ctx, postID, authorID, title, content)
	}

	post, exists := m.Posts[postID]
	if !exists || post.AuthorID != authorID {
		return 0, nil
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	return 1, nil
}

// GetWithAuthor implements the PostStore interface
func (m *MockPostStore) GetWithAuthor(
	ctx context.Context,
	id uuid.UUID,
) (*domain.PostWithAuthor, error) {
	if m.GetWithAuthorFn != nil {
		return m.GetWithAuthorFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}

	return &domain.PostWithAuthor{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		AuthorName: m.AuthorNames[post.AuthorID],
	}, nil
}

// ListWithAuthors implements the PostStore interface
func (m *MockPostStore) ListWithAuthors(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	if m.ListWithAuthorsFn != nil {
		return m.ListWithAuthorsFn(ctx)
	}

	posts := make([]*domain.PostWithAuthor, 0, len(m.Posts))
	for _, post := range m.Posts {
		posts = append(posts, &domain.PostWithAuthor{
			ID:         post.ID,
			Title:      post.Title,
			Content:    post.Content,
			AuthorName: m.AuthorNames[post.AuthorID],
		})
	}
	return posts, nil
}

// WithTx implements the PostStore interface; the mock ignores transactions.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
