package router

import (
	"github.com/Laminito/ameublement-market/internal/app/handlers"
	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/config"
	redisdb "github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/store/impl/cart"
	"github.com/Laminito/ameublement-market/internal/pkg/store/impl/checkout_fence"
	"github.com/Laminito/ameublement-market/internal/pkg/store/impl/profile_cache"
	"github.com/Laminito/ameublement-market/internal/service/credit"
	"github.com/Laminito/ameublement-market/internal/service/session"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

const serviceName = "ameublement-market"

func SetupRouter(cfg *config.AppConfig, redisClient *redisdb.RedisClient, backendClient *backend.Client) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(serviceName)
	r.Use(otelgin.Middleware(serviceName))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Stores
	cartRepo := cart.NewCartRepository(redisClient)
	fenceRepo := checkout_fence.NewCheckoutFenceRepository(redisClient, cfg.Checkout.FenceTTL)
	profileCache := profile_cache.NewProfileCacheRepository(redisClient, cfg.Session.ProfileTTL)

	// Services
	sessions := session.NewService(backendClient, profileCache)
	calculator := credit.NewCalculator(credit.NewRateTable(cfg.Credit.Rates, cfg.Credit.DefaultRate))

	// Handlers
	healthCheckHandler := handlers.NewHealthCheckHandler()
	creditHandler := handlers.NewCreditHandler(calculator)
	cartHandler := handlers.NewCartHandler(cartRepo)
	checkoutHandler := handlers.NewCheckoutHandler(cartRepo, backendClient, fenceRepo)
	catalogHandler := handlers.NewCatalogHandler(backendClient)
	orderHandler := handlers.NewOrderHandler(backendClient)
	authHandler := handlers.NewAuthHandler(backendClient, sessions)
	adminHandler := handlers.NewAdminHandler(backendClient)

	store := r.Group("/storefront")

	store.GET("/healthcheck", healthCheckHandler.HealthCheck)

	store.GET("/credit/quote", creditHandler.Quote)
	store.GET("/credit/options", creditHandler.Options)

	store.POST("/auth/login", authHandler.Login)
	store.POST("/auth/register", authHandler.Register)

	store.GET("/products", catalogHandler.ListProducts)
	store.GET("/products/search", catalogHandler.SearchProducts)
	store.GET("/products/:id", catalogHandler.GetProduct)
	store.GET("/products/:id/reviews", catalogHandler.GetReviews)
	store.GET("/categories", catalogHandler.ListCategories)
	store.GET("/categories/:id", catalogHandler.GetCategory)

	authed := store.Group("", middleware.RequireAuth(sessions))

	authed.GET("/auth/me", authHandler.Me)

	authed.GET("/cart", cartHandler.GetCart)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PUT("/cart/items/:productId", cartHandler.UpdateQuantity)
	authed.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.ClearCart)

	authed.POST("/checkout", checkoutHandler.Checkout)

	authed.GET("/orders", orderHandler.ListOrders)
	authed.GET("/orders/:id", orderHandler.GetOrder)
	authed.PUT("/orders/:id/cancel", orderHandler.CancelOrder)
	authed.GET("/orders/:id/tracking", orderHandler.GetTracking)

	authed.POST("/products/:id/reviews", catalogHandler.AddReview)

	admin := authed.Group("/admin", middleware.RequireAdmin())

	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	admin.GET("/orders", adminHandler.ListAllOrders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.PUT("/orders/:id/payment-status", adminHandler.UpdatePaymentStatus)
	admin.PUT("/orders/:id/tracking", adminHandler.UpdateTracking)
	admin.DELETE("/orders/:id", adminHandler.DeleteOrder)
	admin.GET("/orders/analytics/summary", adminHandler.GetAnalyticsSummary)

	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

	return r
}
