package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/platform/logger"
	"github.com/quillstack/quill-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity if the author ID doesn't exist
// (foreign key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, author_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("foreign key violation during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("author_id", post.AuthorID.String()))
			return fmt.Errorf("%w: author with ID %s not found",
				store.ErrInvalidEntity, post.AuthorID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("author_id", post.AuthorID.String()))
		return mapped
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()))
	return nil
}

// UpdateOwned implements store.PostStore.UpdateOwned
// The WHERE clause matches both post ID and author ID, so an ownership
// mismatch affects zero rows rather than failing.
func (s *PostgresPostStore) UpdateOwned(
	ctx context.Context,
	postID, authorID uuid.UUID,
	title, content *string,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = $3
		WHERE id = $4 AND author_id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		title,
		content,
		time.Now().UTC(),
		postID,
		authorID,
	)

	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", postID.String()),
			slog.String("author_id", authorID.String()))
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", postID.String()))
		return 0, err
	}

	if rowsAffected == 0 {
		log.Warn("post update matched no rows",
			slog.String("post_id", postID.String()),
			slog.String("author_id", authorID.String()))
	} else {
		log.Info("post updated successfully",
			slog.String("post_id", postID.String()))
	}

	return rowsAffected, nil
}

// GetWithAuthor implements store.PostStore.GetWithAuthor
// Returns store.ErrPostNotFound if no post matches the given ID.
func (s *PostgresPostStore) GetWithAuthor(
	ctx context.Context,
	id uuid.UUID,
) (*domain.PostWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.title, p.content, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post domain.PostWithAuthor
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorName,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, mapped
	}

	return &post, nil
}

// ListWithAuthors implements store.PostStore.ListWithAuthors
// Returns an empty slice if no posts exist.
func (s *PostgresPostStore) ListWithAuthors(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.title, p.content, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query posts",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []*domain.PostWithAuthor
	for rows.Next() {
		var post domain.PostWithAuthor
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorName); err != nil {
			log.Error("failed to scan post row",
				slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if posts == nil {
		posts = []*domain.PostWithAuthor{}
	}

	log.Debug("listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}
