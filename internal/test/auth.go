package test

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
)

const hashPrefix = "hash:"

// HasherStub hashes passwords with a trivial reversible scheme so tests can
// assert on the stored value.
type HasherStub struct {
	HashErr    error
	CompareErr error
}

func (h HasherStub) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return hashPrefix + password, nil
}

func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareErr != nil {
		return h.CompareErr
	}
	if hash != hashPrefix+password {
		return errors.New("hash mismatch")
	}
	return nil
}

// StrategyStub issues tokens of the form "kind:subject:uuid:role" and parses
// them back by splitting. No signing is involved.
type StrategyStub struct {
	IssueErr error
	ParseErr error
}

func (s StrategyStub) IssueAccessToken(subject string, userUUID uuid.UUID, role string) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return strings.Join([]string{"access", subject, userUUID.String(), role}, ":"), nil
}

func (s StrategyStub) IssueResetToken(email string, userUUID uuid.UUID) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return strings.Join([]string{"reset", email, userUUID.String(), ""}, ":"), nil
}

func (s StrategyStub) ParseAccessToken(token string) (*pkgAuth.TokenClaims, error) {
	return s.parse(token, "access")
}

func (s StrategyStub) ParseResetToken(token string) (*pkgAuth.TokenClaims, error) {
	return s.parse(token, "reset")
}

func (s StrategyStub) Name() string {
	return "stub"
}

func (s StrategyStub) parse(token, kind string) (*pkgAuth.TokenClaims, error) {
	if s.ParseErr != nil {
		return nil, s.ParseErr
	}
	parts := strings.Split(token, ":")
	if len(parts) != 4 || parts[0] != kind {
		return nil, pkgAuth.ErrInvalidToken
	}
	userUUID, err := uuid.Parse(parts[2])
	if err != nil {
		return nil, pkgAuth.ErrInvalidToken
	}
	return &pkgAuth.TokenClaims{Subject: parts[1], UserUUID: userUUID, Role: parts[3]}, nil
}

// MailerStub records password-reset mails.
type MailerStub struct {
	Sent []ResetMail
	Err  error
}

// ResetMail is one recorded SendPasswordReset call.
type ResetMail struct {
	To   string
	Link string
}

func (m *MailerStub) SendPasswordReset(_ context.Context, to, resetLink string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, ResetMail{To: to, Link: resetLink})
	return nil
}
