package di

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/adapter/cartclient"
	"github.com/qorikusi/backend/internal/adapter/catalogclient"
	"github.com/qorikusi/backend/internal/adapter/gateway"
	"github.com/qorikusi/backend/internal/adapter/mailer"
	"github.com/qorikusi/backend/internal/app"
	"github.com/qorikusi/backend/internal/config"
	"github.com/qorikusi/backend/internal/logger"
	"github.com/qorikusi/backend/internal/pkg/auth"
	"github.com/qorikusi/backend/internal/pkg/codes"
	"github.com/qorikusi/backend/internal/server/http/router"
	"github.com/qorikusi/backend/internal/storage/postgres"
	"github.com/qorikusi/backend/internal/usecase"
	"github.com/qorikusi/backend/internal/worker"
)

// Every service binary shares the same base graph and differs only in its
// router and the adapters its use cases reach for. fx resolves lazily, so
// use cases a service never demands cost nothing.

func base(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// AuthModule composes the auth service: registration, login, password
// recovery.
func AuthModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		mailer.Module,
		router.AuthModule,
	}, opts...)...)
}

// CustomersModule composes the customers service: profile and addresses.
func CustomersModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		router.CustomersModule,
	}, opts...)...)
}

// ProductsModule composes the products service: catalog browsing and
// back-office management.
func ProductsModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		router.ProductsModule,
	}, opts...)...)
}

// CartModule composes the cart service, including the abandoned-cart
// cleanup worker.
func CartModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		router.CartModule,
		fx.Provide(newCartCleaner),
	}, opts...)...)
}

// OrdersModule composes the orders service. It talks to the cart and
// products services over HTTP.
func OrdersModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		codes.Module,
		cartclient.Module,
		catalogclient.Module,
		router.OrdersModule,
	}, opts...)...)
}

// PaymentsModule composes the payments service with the simulated gateway.
func PaymentsModule(opts ...fx.Option) fx.Option {
	return base(append([]fx.Option{
		codes.Module,
		gateway.Module,
		router.PaymentsModule,
	}, opts...)...)
}

func newCartCleaner(u *usecase.CartUseCase, cfg *config.Config, log *slog.Logger) *worker.CartCleaner {
	return worker.NewCartCleaner(u, cfg.CartCleanupInterval, cfg.CartMaxAge, log)
}
