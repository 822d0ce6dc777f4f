package routes

import (
	"time"

	"github.com/darzee-app/darzee-api/internal/config"
	domainRepo "github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/internal/presentation/http/handler"
	"github.com/darzee-app/darzee-api/internal/presentation/http/middleware"
	"github.com/darzee-app/darzee-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Tailor  *handler.TailorHandler
	Order   *handler.OrderHandler
	Invoice *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	TailorRepo      domainRepo.TailorRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	inFlight := middleware.NewInFlightTracker()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(inFlight.Middleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"service":   deps.Cfg.App.Name,
			"in_flight": inFlight.Count(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerPublicTailorRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.ActorMiddleware(deps.TailorRepo))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerPublicTailorRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tailors := v1.Group("/tailors")
	{
		tailors.GET("", h.Tailor.Search)
		tailors.GET("/:id", h.Tailor.Get)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Shop profile (tailor accounts only)
	shop := protected.Group("/tailors/me")
	shop.Use(middleware.RequireRole("tailor"), middleware.RequireTailor())
	{
		shop.GET("", h.Tailor.GetMine)
		shop.PUT("", h.Tailor.Update)
		shop.GET("/orders", h.Order.List)
	}

	// Orders
	registerOrderRoutes(protected, h, deps)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.RequireRole("customer"), middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/export", middleware.RequireRole("tailor"), middleware.RequireTailor(), h.Order.Export)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/invoice", h.Invoice.Render)
		orders.POST("/:id/payments", middleware.RequireRole("tailor"), h.Order.RecordPayment)
		orders.PUT("/:id/status", middleware.RequireRole("tailor"), h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}
