package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common post validation errors
var (
	ErrEmptyPostID   = errors.New("post ID cannot be empty")
	ErrEmptyAuthorID = errors.New("post author ID cannot be empty")
	ErrEmptyTitle    = errors.New("post title cannot be empty")
)

// Post represents a blog post authored by a user.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new Post owned by the given author.
// It generates a new UUID and sets creation/update timestamps.
// Returns an error if validation fails.
func NewPost(authorID uuid.UUID, title, content string) (*Post, error) {
	post := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyAuthorID
	}

	if p.Title == "" {
		return ErrEmptyTitle
	}

	if p.Content == "" {
		return ErrEmptyContent
	}

	return nil
}

// PostWithAuthor is the read model for the public post endpoints:
// a post projected together with its author's display name.
type PostWithAuthor struct {
	ID         uuid.UUID
	Title      string
	Content    string
	AuthorName string
}
