package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockroom/cmd"
	"stockroom/internal/config"
	"stockroom/internal/container"
	"stockroom/internal/database"
	"stockroom/internal/database/migration"
	"stockroom/internal/inventory/products"
	"stockroom/internal/inventory/transfers"
	"stockroom/internal/logger"
	"stockroom/internal/middleware"
	"stockroom/internal/users"
	"stockroom/pkg/security"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Handle CLI subcommands (migrate) before the server starts
	cmd.Execute(context.Background())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	if err := migration.Migrate(cfg.DatabaseURL, "file://"+cfg.MigrationsDir, zapLogger); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	security.Configure(cfg.JWTSecret)

	app := container.NewAppContainer(db, cfg, zapLogger)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))

	security.RegisterRoutes(router, app.LoginHandler)
	transfers.RegisterRoutes(router, app.TransferHandler)
	products.RegisterRoutes(router, app.ProductHandler)
	users.RegisterRoutes(router, app.UserHandler)

	router.GET("/health", middleware.HealthCheckHandler())

	if err := router.Run(cfg.AppHost); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
