package routes

import (
	"event-registration-backend/internal/api/handlers"
	"event-registration-backend/internal/api/middleware"
	"event-registration-backend/internal/auth"
	"event-registration-backend/internal/config"
	"event-registration-backend/internal/repository"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	participantRepo := repository.NewParticipantRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Initialize services
	registrationService := service.NewRegistrationService(participantRepo, registrationRepo, validator)
	eventService := service.NewEventService(eventRepo, teamRepo, validator)
	approvalService := service.NewApprovalService(registrationRepo)
	receiptService := service.NewReceiptService(registrationRepo)

	// Initialize auth service for the admin panel
	authService := auth.NewAuthService(cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	publicEventHandler := handlers.NewPublicEventHandler(eventService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	seedHandler := handlers.NewSeedHandler(eventService)
	adminEventHandler := handlers.NewAdminEventHandler(eventService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	router.GET("/events", publicEventHandler.ListEvents)
	router.POST("/registrations", registrationHandler.SubmitRegistration)
	router.POST("/seed", seedHandler.Seed)

	// Admin routes - login is public, everything else requires a token
	router.POST("/admin/login", authHandler.Login)

	admin := router.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		// Event management
		admin.GET("/events", adminEventHandler.ListEvents)
		admin.POST("/events", adminEventHandler.CreateEvent)
		admin.PUT("/events/:id", adminEventHandler.UpdateEvent)
		admin.DELETE("/events/:id", adminEventHandler.DeleteEvent)

		// Approval queue
		admin.GET("/pending", approvalHandler.ListPending)
		admin.GET("/approved", approvalHandler.ListApproved)
		admin.POST("/approve", approvalHandler.Approve)
		admin.POST("/reject", approvalHandler.Reject)

		// Receipts
		admin.POST("/pdf", receiptHandler.GenerateReceipt)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
