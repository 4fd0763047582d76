package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/AncyStar/vehicle-rental-backend/internal/handler"
	"github.com/AncyStar/vehicle-rental-backend/internal/middleware"
	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler    *handler.AuthHandler
	VehicleHandler *handler.VehicleHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
	AuthService    *service.AuthService
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
	AllowedOrigins []string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	authRequired := middleware.AuthMiddleware(deps.AuthService)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Vehicle routes. Reads are public; catalog changes are admin only.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/:id", deps.VehicleHandler.Get)
			vehicles.GET("/:id/availability", deps.VehicleHandler.Availability)
			vehicles.POST("", authRequired, middleware.AdminOnly(), deps.VehicleHandler.Create)
			vehicles.PUT("/:id", authRequired, middleware.AdminOnly(), deps.VehicleHandler.Update)
			vehicles.DELETE("/:id", authRequired, middleware.AdminOnly(), deps.VehicleHandler.Delete)
		}

		// Booking routes.
		bookings := v1.Group("/bookings", authRequired)
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/quote", deps.BookingHandler.Quote)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.POST("/:id/cancel", deps.BookingHandler.CancelBooking)
		}

		// Payment routes. The webhook is called by the provider, not a user.
		payments := v1.Group("/payments")
		{
			payments.POST("/checkout", authRequired, deps.PaymentHandler.CreateCheckout)
			payments.POST("/webhook", deps.PaymentHandler.Webhook)
			payments.GET("/:id", authRequired, deps.PaymentHandler.GetPayment)
		}
	}

	return router
}
