// Package auth provides token issuance/verification and password hashing
// for the blogging service.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's identifier.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrInvalidToken if the token is malformed, tampered
	// with, or signed with a different secret.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by an identity token.
// Tokens carry no expiry: once issued they remain valid until the
// signing secret rotates.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject  string    `json:"sub,omitempty"`
	IssuedAt time.Time `json:"iat,omitempty"`
	ID       string    `json:"jti,omitempty"`
}
