package usecase

import (
	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/adapter/mailer"
	"github.com/qorikusi/backend/internal/config"
	"github.com/qorikusi/backend/internal/domain/repository"
	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCustomerUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	NewOrderUseCase,
	NewPaymentUseCase,
)

type authUseCaseParams struct {
	fx.In

	Customers repository.CustomerRepository
	Admins    repository.AdminRepository
	Hasher    pkgAuth.PasswordHasher
	Strategy  pkgAuth.Strategy
	Mailer    mailer.Mailer
	Config    *config.Config
}

func newAuthUseCase(p authUseCaseParams) *AuthUseCase {
	return NewAuthUseCase(p.Customers, p.Admins, p.Hasher, p.Strategy, p.Mailer,
		p.Config.AccessTokenTTL, p.Config.ResetLinkBase)
}
