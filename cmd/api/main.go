package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/darzee-app/darzee-api/internal/application/service"
	"github.com/darzee-app/darzee-api/internal/config"
	"github.com/darzee-app/darzee-api/internal/infrastructure/database"
	"github.com/darzee-app/darzee-api/internal/infrastructure/repository"
	"github.com/darzee-app/darzee-api/internal/presentation/http/handler"
	"github.com/darzee-app/darzee-api/internal/presentation/http/routes"
	"github.com/darzee-app/darzee-api/pkg/email"
	"github.com/darzee-app/darzee-api/pkg/invoice"
	"github.com/darzee-app/darzee-api/pkg/oauth"
	"github.com/darzee-app/darzee-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tailorRepo := repository.NewTailorRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize the invoice renderer
	renderer, err := invoice.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize invoice renderer: %v", err)
	}
	logoLoader := invoice.NewFileLogoLoader(filepath.Join(cfg.Storage.Path, "logos"))

	// Initialize services
	authService := service.NewAuthService(userRepo, tailorRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	tailorService := service.NewTailorService(tailorRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, paymentRepo, tailorRepo, userRepo, emailService)
	invoiceService := service.NewInvoiceService(orderRepo, tailorRepo, renderer, logoLoader)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, googleOAuthService),
		Tailor:  handler.NewTailorHandler(tailorService),
		Order:   handler.NewOrderHandler(orderService),
		Invoice: handler.NewInvoiceHandler(invoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		TailorRepo:      tailorRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
