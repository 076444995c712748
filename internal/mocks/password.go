package mocks

import (
	"errors"

	"github.com/quillstack/quill-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// It returns a deterministic fake hash rather than doing real bcrypt work.
type MockPasswordHasher struct {
	HashFn  func(password string) (string, error)
	HashErr error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	CompareFn     func(hashedPassword, password string) error
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
