package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstack/quill-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  error
	}{
		{
			name:     "valid user",
			email:    "a@x.com",
			password: "secret1",
			userName: "A",
			wantErr:  nil,
		},
		{
			name:     "empty email",
			email:    "",
			password: "secret1",
			userName: "A",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			email:    "ax.com",
			password: "secret1",
			userName: "A",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			email:    "a@xcom",
			password: "secret1",
			userName: "A",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "empty name",
			email:    "a@x.com",
			password: "secret1",
			userName: "  ",
			wantErr:  domain.ErrEmptyName,
		},
		{
			name:     "password too short",
			email:    "a@x.com",
			password: "short",
			userName: "A",
			wantErr:  domain.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.email, tt.password, tt.userName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.userName, user.Name)
			assert.False(t, user.CreatedAt.IsZero())
			assert.False(t, user.UpdatedAt.IsZero())
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password,
	// only the hash.
	user := &domain.User{
		ID:             uuid.New(),
		Email:          "a@x.com",
		Name:           "A",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestUserPasswordTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, domain.MaxPasswordLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := domain.NewUser("a@x.com", string(long), "A")
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
}
