package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	testhelpers "github.com/qorikusi/backend/internal/test"
)

func newAuthFixture() (*AuthUseCase, *testhelpers.CustomerRepositoryStub, *testhelpers.AdminRepositoryStub, *testhelpers.MailerStub) {
	customers := testhelpers.NewCustomerRepositoryStub()
	admins := testhelpers.NewAdminRepositoryStub()
	mail := &testhelpers.MailerStub{}
	uc := NewAuthUseCase(customers, admins, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, mail, time.Hour, "https://shop.example/reset")
	return uc, customers, admins, mail
}

func TestRegisterClient(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()

	customer, err := uc.RegisterClient(context.Background(), "  Maria@Example.Test ", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if customer.Email != "maria@example.test" {
		t.Fatalf("expected normalized email, got %q", customer.Email)
	}
	if customer.PasswordHash != "hash:secret" {
		t.Fatalf("expected hashed password, got %q", customer.PasswordHash)
	}
	if _, ok := customers.ByEmail["maria@example.test"]; !ok {
		t.Fatal("expected customer to be persisted")
	}
}

func TestRegisterClientDuplicateActive(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()
	customers.Seed(&model.Customer{Email: "taken@example.test", PasswordHash: "hash:old", Active: true})

	if _, err := uc.RegisterClient(context.Background(), "taken@example.test", "new"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterClientRevivesDeactivated(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()
	seeded := customers.Seed(&model.Customer{Email: "back@example.test", PasswordHash: "hash:old", Active: false})

	customer, err := uc.RegisterClient(context.Background(), "back@example.test", "fresh")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if customer.UUID != seeded.UUID {
		t.Fatal("expected the original account to be revived, not a new one")
	}
	if !customer.Active || customer.PasswordHash != "hash:fresh" {
		t.Fatalf("expected revived active account with new password, got active=%v hash=%q", customer.Active, customer.PasswordHash)
	}
}

func TestRegisterClientEmptyInput(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	if _, err := uc.RegisterClient(context.Background(), "", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := uc.RegisterClient(context.Background(), "a@example.test", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestRegisterAdminRevivesDeactivated(t *testing.T) {
	uc, _, admins, _ := newAuthFixture()
	admins.ByUsername["ops"] = &model.Admin{ID: 7, UUID: uuid.New(), Username: "ops", PasswordHash: "hash:old", Active: false}

	admin, err := uc.RegisterAdmin(context.Background(), "ops", "fresh")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !admin.Active || admin.PasswordHash != "hash:fresh" {
		t.Fatalf("expected revived admin, got active=%v hash=%q", admin.Active, admin.PasswordHash)
	}
}

func TestLoginClient(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()
	seeded := customers.Seed(&model.Customer{Email: "maria@example.test", PasswordHash: "hash:secret", Active: true})

	session, err := uc.Login(context.Background(), "Maria@example.test", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(session.Roles) != 1 || session.Roles[0] != model.RoleClient {
		t.Fatalf("expected CLIENT role, got %v", session.Roles)
	}
	if session.ExpiresIn != time.Hour {
		t.Fatalf("expected TTL from config, got %v", session.ExpiresIn)
	}
	if !strings.Contains(session.Token, seeded.UUID.String()) {
		t.Fatalf("expected token to carry the customer uuid, got %q", session.Token)
	}
}

func TestLoginAdminFallback(t *testing.T) {
	uc, _, admins, _ := newAuthFixture()
	admins.ByUsername["ops"] = &model.Admin{ID: 1, UUID: uuid.New(), Username: "ops", PasswordHash: "hash:secret", Active: true}

	session, err := uc.Login(context.Background(), "ops", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(session.Roles) != 1 || session.Roles[0] != model.RoleAdmin {
		t.Fatalf("expected ADMIN role, got %v", session.Roles)
	}
}

func TestLoginRejections(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()
	customers.Seed(&model.Customer{Email: "maria@example.test", PasswordHash: "hash:secret", Active: true})
	customers.Seed(&model.Customer{Email: "gone@example.test", PasswordHash: "hash:secret", Active: false})

	cases := []struct {
		name     string
		login    string
		password string
	}{
		{"wrong password", "maria@example.test", "nope"},
		{"unknown account", "ghost@example.test", "secret"},
		{"deactivated account", "gone@example.test", "secret"},
		{"empty login", "", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Login(context.Background(), tc.login, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestForgotPasswordSendsLink(t *testing.T) {
	uc, customers, _, mail := newAuthFixture()
	customers.Seed(&model.Customer{Email: "maria@example.test", PasswordHash: "hash:secret", Active: true})

	if err := uc.ForgotPassword(context.Background(), "maria@example.test"); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}
	if len(mail.Sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mail.Sent))
	}
	if mail.Sent[0].To != "maria@example.test" {
		t.Fatalf("unexpected recipient %q", mail.Sent[0].To)
	}
	if !strings.HasPrefix(mail.Sent[0].Link, "https://shop.example/reset?token=") {
		t.Fatalf("unexpected reset link %q", mail.Sent[0].Link)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	uc, _, _, mail := newAuthFixture()

	if err := uc.ForgotPassword(context.Background(), "ghost@example.test"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if len(mail.Sent) != 0 {
		t.Fatalf("expected no mail, got %d", len(mail.Sent))
	}
}

func TestResetPassword(t *testing.T) {
	uc, customers, _, _ := newAuthFixture()
	seeded := customers.Seed(&model.Customer{Email: "maria@example.test", PasswordHash: "hash:old", Active: true})

	token, err := testhelpers.StrategyStub{}.IssueResetToken(seeded.Email, seeded.UUID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if err := uc.ResetPassword(context.Background(), token, "brandnew"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if seeded.PasswordHash != "hash:brandnew" {
		t.Fatalf("expected new password hash, got %q", seeded.PasswordHash)
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	if err := uc.ResetPassword(context.Background(), "access:x:y:z", "brandnew"); err == nil {
		t.Fatal("expected error for non-reset token")
	}
}
