package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenClaims is the identity carried by an issued token.
type TokenClaims struct {
	Subject  string
	UserUUID uuid.UUID
	Role     string
}

// Strategy issues and verifies the two token kinds the suite uses: access
// tokens for API calls and short-lived password-reset tokens.
type Strategy interface {
	IssueAccessToken(subject string, userUUID uuid.UUID, role string) (string, error)
	IssueResetToken(email string, userUUID uuid.UUID) (string, error)
	ParseAccessToken(token string) (*TokenClaims, error)
	ParseResetToken(token string) (*TokenClaims, error)
	Name() string
}

type Options struct {
	AccessTTL time.Duration
	ResetTTL  time.Duration
}
