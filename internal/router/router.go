package router

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/inkwell-app/inkwell/backend/internal/handlers"
	"github.com/inkwell-app/inkwell/backend/internal/middleware"
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/internal/repositories"
	"github.com/inkwell-app/inkwell/backend/internal/storage"
	"github.com/inkwell-app/inkwell/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.Metrics())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, files storage.ObjectStore) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(
		&models.User{},
		&models.Bookmark{},
	); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	mongoDB := mgClient.Database(cfg.MongoDatabase)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mongoDB, cfg.PostsCollection)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB, cfg.CommentsCollection)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(pgdb)

	if err := commentRepo.EnsureIndexes(context.Background()); err != nil {
		log.Printf("Failed to ensure comment indexes: %v", err)
	}

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authGroup.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, commentRepo, files)
	postHandler.RegisterPostRoutes(api)

	likeHandler := handlers.NewLikeHandler(postRepo)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)

	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkRepo, postRepo)
	bookmarkHandler.RegisterBookmarkRoutes(api)

	fileHandler := handlers.NewFileHandler(files)
	fileHandler.RegisterFileRoutes(api)

	log.Println("All routes configured.")
}
