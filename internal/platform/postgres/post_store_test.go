package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/store"
)

func newPostStoreWithMock(t *testing.T) (*PostgresPostStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewPostgresPostStore(db, nil), mock
}

func testPost() *domain.Post {
	return &domain.Post{
		ID:        uuid.New(),
		AuthorID:  uuid.New(),
		Title:     "Title",
		Content:   "Content",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestPostStoreCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		post := testPost()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
			WithArgs(post.ID, post.AuthorID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Create(context.Background(), post))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown author", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		post := testPost()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
			WillReturnError(&pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "posts_author_id_fkey",
			})

		err := s.Create(context.Background(), post)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("invalid post never reaches the database", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		post := testPost()
		post.Title = ""

		err := s.Create(context.Background(), post)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreCreateWithTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	s := NewPostgresPostStore(db, nil)
	post := testPost()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(post.ID, post.AuthorID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Create(ctx, post)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStoreUpdateOwned(t *testing.T) {
	t.Parallel()

	title := "Updated"

	t.Run("owner match updates one row", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		postID, authorID := uuid.New(), uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
			WithArgs(title, nil, sqlmock.AnyArg(), postID, authorID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := s.UpdateOwned(context.Background(), postID, authorID, &title, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("ownership mismatch matches zero rows", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		postID, authorID := uuid.New(), uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := s.UpdateOwned(context.Background(), postID, authorID, &title, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestPostStoreGetWithAuthor(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		id := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "title", "content", "name"}).
			AddRow(id, "Title", "Content", "A")

		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
			WithArgs(id).
			WillReturnRows(rows)

		post, err := s.GetWithAuthor(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, post.ID)
		assert.Equal(t, "A", post.AuthorName)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "name"}))

		_, err := s.GetWithAuthor(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostStoreListWithAuthors(t *testing.T) {
	t.Parallel()

	t.Run("empty result is an empty slice", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "name"}))

		posts, err := s.ListWithAuthors(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("returns all rows", func(t *testing.T) {
		s, mock := newPostStoreWithMock(t)

		rows := sqlmock.NewRows([]string{"id", "title", "content", "name"}).
			AddRow(uuid.New(), "First", "Content", "A").
			AddRow(uuid.New(), "Second", "Content", "B")

		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
			WillReturnRows(rows)

		posts, err := s.ListWithAuthors(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "First", posts[0].Title)
		assert.Equal(t, "B", posts[1].AuthorName)
	})
}
