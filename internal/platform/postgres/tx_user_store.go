package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/store"
)

// TxUserStore wraps a PostgresUserStore and runs writes inside a
// transaction via store.RunInTransaction. Reads delegate directly.
type TxUserStore struct {
	db    *sql.DB
	inner *PostgresUserStore
}

// NewTxUserStore creates a transactional UserStore over the given
// database handle.
func NewTxUserStore(db *sql.DB, logger *slog.Logger) *TxUserStore {
	return &TxUserStore{
		db:    db,
		inner: NewPostgresUserStore(db, logger),
	}
}

var _ store.UserStore = (*TxUserStore)(nil)

// Create inserts the user inside a transaction so a partial write never
// becomes visible.
func (s *TxUserStore) Create(ctx context.Context, user *domain.User) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.inner.WithTx(tx).Create(ctx, user)
	})
}

// GetByID implements store.UserStore.GetByID
func (s *TxUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.inner.GetByID(ctx, id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *TxUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.inner.GetByEmail(ctx, email)
}

// WithTx implements store.UserStore.WithTx
func (s *TxUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s.inner.WithTx(tx)
}
