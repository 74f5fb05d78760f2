package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/inkwell-app/inkwell/backend/internal/router"
	"github.com/inkwell-app/inkwell/backend/internal/storage"
	"github.com/inkwell-app/inkwell/backend/pkg/config"
	"github.com/inkwell-app/inkwell/backend/pkg/firebase"
	"github.com/inkwell-app/inkwell/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	ctx := context.Background()

	// Firebase login is optional; without credentials the endpoint reports
	// itself unavailable instead of failing startup.
	var firebaseAuth *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuth = firebaseApp.AuthClient
	} else {
		log.Println("No Firebase credentials configured, firebase-login disabled.")
	}

	// Object storage for post images and profile pictures
	files, err := storage.NewS3FileStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	router.SetupMiddleware(e)
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, firebaseAuth, files)

	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
