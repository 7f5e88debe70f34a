package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const resetTokenType = "pwd-reset"

// JWTStrategy implements token creation/verification with HS256 signatures.
type JWTStrategy struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserUUID string `json:"uuid"`
	Role     string `json:"role,omitempty"`
	Type     string `json:"typ,omitempty"`
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	accessTTL := opts.AccessTTL
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	resetTTL := opts.ResetTTL
	if resetTTL <= 0 {
		resetTTL = 15 * time.Minute
	}
	return &JWTStrategy{secret: []byte(secret), accessTTL: accessTTL, resetTTL: resetTTL}
}

// IssueAccessToken generates a signed access token carrying uuid and role claims.
func (s *JWTStrategy) IssueAccessToken(subject string, userUUID uuid.UUID, role string) (string, error) {
	return s.sign(subject, userUUID, role, "", s.accessTTL)
}

// IssueResetToken generates a short-lived password-reset token.
func (s *JWTStrategy) IssueResetToken(email string, userUUID uuid.UUID) (string, error) {
	return s.sign(email, userUUID, "", resetTokenType, s.resetTTL)
}

// ParseAccessToken validates an access token and returns its claims.
// Reset tokens are rejected here so a mailed link cannot act as a session.
func (s *JWTStrategy) ParseAccessToken(token string) (*TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Type != "" {
		return nil, ErrInvalidToken
	}
	return s.toTokenClaims(claims)
}

// ParseResetToken validates a password-reset token, checking the typ claim.
func (s *JWTStrategy) ParseResetToken(token string) (*TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Type != resetTokenType {
		return nil, ErrInvalidToken
	}
	return s.toTokenClaims(claims)
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}

func (s *JWTStrategy) sign(subject string, userUUID uuid.UUID, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserUUID: userUUID.String(),
		Role:     role,
		Type:     typ,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTStrategy) parse(token string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTStrategy) toTokenClaims(claims *tokenClaims) (*TokenClaims, error) {
	userUUID, err := uuid.Parse(claims.UserUUID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &TokenClaims{Subject: claims.Subject, UserUUID: userUUID, Role: claims.Role}, nil
}
