package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/socialconnect/backend/internal/handlers"
	"github.com/socialconnect/backend/internal/middleware"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"github.com/socialconnect/backend/internal/services"
	"github.com/socialconnect/backend/pkg/config"
	"github.com/socialconnect/backend/pkg/mailer"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, mail mailer.Mailer, logger *zap.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Core services ---
	propagator := services.NewPropagator(logger)
	profileService := services.NewProfileService(db)
	followService := services.NewFollowService(db, profileService, propagator, logger)
	likeService := services.NewLikeService(db, propagator, logger)
	commentService := services.NewCommentService(db, propagator, logger)
	postService := services.NewPostService(db, profileService, propagator, logger)
	feedService := services.NewFeedService(db)
	notificationService := services.NewNotificationService(db)
	adminService := services.NewAdminService(db, propagator, logger)
	authService := services.NewAuthService(db, profileService, mail, logger, cfg.JWTSecret, cfg.BaseURL)

	userRepo := repositories.NewPostgresUserRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authHandler.RegisterProtectedAuthRoutes(api)
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User & profile routes
	userHandler := handlers.NewUserHandler(userRepo, profileService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Admin routes (staff only)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireStaff())
	adminHandler := handlers.NewAdminHandler(adminService)
	adminHandler.RegisterAdminRoutes(adminGroup)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
