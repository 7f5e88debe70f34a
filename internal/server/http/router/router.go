package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/domain/model"
	pkgAuth "github.com/qorikusi/backend/internal/pkg/auth"
	"github.com/qorikusi/backend/internal/server/http/handlers"
	"github.com/qorikusi/backend/internal/server/http/middleware"
)

func newEngine(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	return engine
}

// SetupAuth configures the auth service router.
func SetupAuth(facade handlers.AuthFacade, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewAuthHandler(facade)

	auth := engine.Group("/auth")
	auth.POST("/register/client", h.RegisterClient)
	auth.POST("/register/admin", h.RegisterAdmin)
	auth.POST("/login", h.Login)
	auth.POST("/password/forgot", h.ForgotPassword)
	auth.POST("/password/reset", h.ResetPassword)

	return engine
}

// SetupCustomers configures the customers service router.
func SetupCustomers(facade handlers.CustomerFacade, strategy pkgAuth.Strategy, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewCustomerHandler(facade)

	me := engine.Group("/client/customers/me")
	me.Use(middleware.AuthRequired(strategy, model.RoleClient))
	me.GET("", h.Profile)
	me.PUT("", h.UpdateProfile)
	me.GET("/addresses", h.Addresses)
	me.POST("/addresses", h.AddAddress)
	me.PUT("/addresses/:uuid", h.UpdateAddress)
	me.DELETE("/addresses/:uuid", h.DeleteAddress)

	return engine
}

// SetupProducts configures the products service router.
func SetupProducts(facade handlers.CatalogFacade, strategy pkgAuth.Strategy, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewCatalogHandler(facade)

	catalog := engine.Group("/catalog")
	catalog.GET("", h.Catalog)
	catalog.GET("/categories", h.Categories)
	catalog.GET("/:uuid", h.CatalogProduct)

	// Service-to-service lookups bypass auth; the endpoint is not exposed
	// publicly.
	engine.GET("/internal/products/:uuid", h.Product)

	admin := engine.Group("/admin/products")
	admin.Use(middleware.AuthRequired(strategy, model.RoleAdmin))
	admin.GET("", h.AdminProducts)
	admin.GET("/:uuid", h.Product)
	admin.POST("", h.CreateProduct)
	admin.PUT("/:uuid", h.UpdateProduct)
	admin.DELETE("/:uuid", h.DeleteProduct)

	return engine
}

// SetupCart configures the cart service router. Carts are addressed by UUID
// so guests can use them without an account.
func SetupCart(facade handlers.CartFacade, strategy pkgAuth.Strategy, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewCartHandler(facade)

	carts := engine.Group("/carts")
	carts.Use(middleware.AuthOptional(strategy))
	carts.POST("", h.CreateAnonymous)
	carts.GET("/:uuid", h.Snapshot)
	carts.POST("/:uuid/items", h.AddItem)
	carts.PUT("/:uuid/items/:productUuid", h.SetItemQuantity)
	carts.DELETE("/:uuid/items/:productUuid", h.RemoveItem)
	carts.DELETE("/:uuid/items", h.Clear)

	me := engine.Group("/client/carts/me")
	me.Use(middleware.AuthRequired(strategy, model.RoleClient))
	me.GET("", h.FindOrCreate)
	me.POST("/merge", h.Merge)

	internal := engine.Group("/internal/carts")
	internal.GET("/:uuid", h.InternalSnapshot)
	internal.DELETE("/:uuid/items", h.InternalClear)

	return engine
}

// SetupOrders configures the orders service router.
func SetupOrders(facade handlers.OrderFacade, strategy pkgAuth.Strategy, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewOrderHandler(facade)

	client := engine.Group("/client/orders")
	client.Use(middleware.AuthRequired(strategy, model.RoleClient))
	client.POST("", h.Create)
	client.GET("", h.List)
	client.GET("/:uuid", h.Get)

	admin := engine.Group("/admin/orders")
	admin.Use(middleware.AuthRequired(strategy, model.RoleAdmin))
	admin.GET("", h.AdminList)
	admin.GET("/:uuid", h.AdminGet)
	admin.PUT("/:uuid/status", h.UpdateStatus)

	return engine
}

// SetupPayments configures the payments service router.
func SetupPayments(facade handlers.PaymentFacade, strategy pkgAuth.Strategy, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	h := handlers.NewPaymentHandler(facade)

	client := engine.Group("/client/payments")
	client.Use(middleware.AuthRequired(strategy, model.RoleClient))
	client.POST("", h.Process)
	client.GET("/:uuid", h.Get)

	return engine
}
