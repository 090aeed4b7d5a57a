package main

import (
	"context"
	"os"
	"time"

	"github.com/smhardwarepst-collab/inventaris-backend/cmd"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/core/container"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/core/logger"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/core/routes"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/database"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// .env is a local convenience; system environment stays authoritative.
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd.Execute(ctx)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatal("could not connect to the database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Connected to the database successfully")

	go middleware.MonitorDatabase(ctx, db, 30*time.Second)

	appContainer := container.NewAppContainer(db, log)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(log))
	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = ":8080"
	}

	if err := router.Run(host); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
