package router

import (
	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/server/http/handlers"
	"github.com/qorikusi/backend/internal/usecase"
)

// Per-service modules: each binds its facade interface to the concrete use
// case and registers the matching router constructor.

// AuthModule wires the auth service router.
var AuthModule = fx.Options(
	fx.Provide(func(u *usecase.AuthUseCase) handlers.AuthFacade { return u }),
	fx.Provide(SetupAuth),
)

// CustomersModule wires the customers service router.
var CustomersModule = fx.Options(
	fx.Provide(func(u *usecase.CustomerUseCase) handlers.CustomerFacade { return u }),
	fx.Provide(SetupCustomers),
)

// ProductsModule wires the products service router.
var ProductsModule = fx.Options(
	fx.Provide(func(u *usecase.CatalogUseCase) handlers.CatalogFacade { return u }),
	fx.Provide(SetupProducts),
)

// CartModule wires the cart service router.
var CartModule = fx.Options(
	fx.Provide(func(u *usecase.CartUseCase) handlers.CartFacade { return u }),
	fx.Provide(SetupCart),
)

// OrdersModule wires the orders service router.
var OrdersModule = fx.Options(
	fx.Provide(func(u *usecase.OrderUseCase) handlers.OrderFacade { return u }),
	fx.Provide(SetupOrders),
)

// PaymentsModule wires the payments service router.
var PaymentsModule = fx.Options(
	fx.Provide(func(u *usecase.PaymentUseCase) handlers.PaymentFacade { return u }),
	fx.Provide(SetupPayments),
)
