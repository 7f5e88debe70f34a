package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewJWTStrategyDefaultTTLs(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.accessTTL != time.Hour {
		t.Fatalf("unexpected access ttl: %s", strategy.accessTTL)
	}
	if strategy.resetTTL != 15*time.Minute {
		t.Fatalf("unexpected reset ttl: %s", strategy.resetTTL)
	}
}

func TestIssueAndParseAccessToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute})
	userUUID := uuid.New()

	token, err := strategy.IssueAccessToken("maria@example.test", userUUID, "CLIENT")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := strategy.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "maria@example.test" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.UserUUID != userUUID {
		t.Fatalf("unexpected uuid %s", claims.UserUUID)
	}
	if claims.Role != "CLIENT" {
		t.Fatalf("unexpected role %q", claims.Role)
	}
}

func TestIssueAndParseResetToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{ResetTTL: time.Minute})
	userUUID := uuid.New()

	token, err := strategy.IssueResetToken("maria@example.test", userUUID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := strategy.ParseResetToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserUUID != userUUID {
		t.Fatalf("unexpected uuid %s", claims.UserUUID)
	}
}

func TestTokenKindsDoNotCross(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	userUUID := uuid.New()

	access, err := strategy.IssueAccessToken("maria@example.test", userUUID, "CLIENT")
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	reset, err := strategy.IssueResetToken("maria@example.test", userUUID)
	if err != nil {
		t.Fatalf("issue reset token: %v", err)
	}

	if _, err := strategy.ParseAccessToken(reset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected reset token rejected as session, got %v", err)
	}
	if _, err := strategy.ParseResetToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected access token rejected as reset, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Nanosecond})
	token, err := strategy.IssueAccessToken("maria@example.test", uuid.New(), "CLIENT")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := strategy.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTStrategy("secret", Options{})
	verifier := NewJWTStrategy("other-secret", Options{})

	token, err := issuer.IssueAccessToken("maria@example.test", uuid.New(), "CLIENT")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := strategy.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestStrategyName(t *testing.T) {
	if name := NewJWTStrategy("secret", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected name %q", name)
	}
}
