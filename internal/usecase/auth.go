package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/adapter/mailer"
	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management for both
// storefront clients and back-office admins.
type AuthUseCase struct {
	customers repository.CustomerRepository
	admins    repository.AdminRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
	mail      mailer.Mailer

	accessTTL     time.Duration
	resetLinkBase string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	customers repository.CustomerRepository,
	admins repository.AdminRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	mail mailer.Mailer,
	accessTTL time.Duration,
	resetLinkBase string,
) *AuthUseCase {
	return &AuthUseCase{
		customers:     customers,
		admins:        admins,
		hasher:        hasher,
		tokens:        strategy,
		mail:          mail,
		accessTTL:     accessTTL,
		resetLinkBase: resetLinkBase,
	}
}

// RegisterClient creates a storefront account. Registering an email that
// belongs to a deactivated account revives it with the new password instead
// of failing.
func (u *AuthUseCase) RegisterClient(ctx context.Context, email, password string) (*model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	customer, err := u.customers.Create(ctx, email, hash)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		return nil, err
	}

	existing, getErr := u.customers.GetByEmail(ctx, email)
	if getErr != nil {
		return nil, err
	}
	if existing.Active {
		return nil, domainErrors.ErrAlreadyExists
	}
	if err := u.customers.Reactivate(ctx, existing.ID, hash); err != nil {
		return nil, err
	}
	existing.PasswordHash = hash
	existing.Active = true
	return existing, nil
}

// RegisterAdmin creates a back-office account, reviving a deactivated one
// the same way RegisterClient does.
func (u *AuthUseCase) RegisterAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	admin, err := u.admins.Create(ctx, username, hash)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		return nil, err
	}

	existing, getErr := u.admins.GetByUsername(ctx, username)
	if getErr != nil {
		return nil, err
	}
	if existing.Active {
		return nil, domainErrors.ErrAlreadyExists
	}
	if err := u.admins.Reactivate(ctx, existing.ID, hash); err != nil {
		return nil, err
	}
	existing.PasswordHash = hash
	existing.Active = true
	return existing, nil
}

// Login authenticates by client email first, then by admin username. Any
// miss collapses into ErrInvalidCredentials so callers cannot tell which
// accounts exist.
func (u *AuthUseCase) Login(ctx context.Context, login, password string) (*model.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	customer, err := u.customers.GetByEmail(ctx, strings.ToLower(login))
	if err == nil {
		if !customer.Active {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return u.openSession(customer.Email, customer.UUID, model.RoleClient, customer.PasswordHash, password)
	}
	if !errors.Is(err, domainErrors.ErrCustomerNotFound) {
		return nil, err
	}

	admin, err := u.admins.GetByUsername(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.Active {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return u.openSession(admin.Username, admin.UUID, model.RoleAdmin, admin.PasswordHash, password)
}

func (u *AuthUseCase) openSession(subject string, userUUID uuid.UUID, role, hash, password string) (*model.Session, error) {
	if err := u.hasher.Compare(hash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}
	token, err := u.tokens.IssueAccessToken(subject, userUUID, role)
	if err != nil {
		return nil, err
	}
	return &model.Session{Token: token, ExpiresIn: u.accessTTL, Roles: []string{role}}, nil
}

// ForgotPassword mails a reset link to the account holder. An unknown email
// is not an error: the response must not reveal whether the account exists.
func (u *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	customer, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrCustomerNotFound) {
			return nil
		}
		return err
	}
	if !customer.Active {
		return nil
	}

	token, err := u.tokens.IssueResetToken(customer.Email, customer.UUID)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s?token=%s", u.resetLinkBase, url.QueryEscape(token))
	return u.mail.SendPasswordReset(ctx, customer.Email, link)
}

// ResetPassword consumes a reset token and installs the new password.
func (u *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domainErrors.ErrInvalidCredentials
	}
	claims, err := u.tokens.ParseResetToken(token)
	if err != nil {
		return err
	}

	customer, err := u.customers.GetByUUID(ctx, claims.UserUUID)
	if err != nil {
		return err
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return u.customers.UpdatePassword(ctx, customer.ID, hash)
}
