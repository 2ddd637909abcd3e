package main

import (
	"log"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/crickhub-dev/crickhub/internal/config"
	"github.com/crickhub-dev/crickhub/internal/handlers"
	"github.com/crickhub-dev/crickhub/internal/router"
	"github.com/crickhub-dev/crickhub/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.Debug = cfg.Debug

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.EnsureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	sessions := session.NewStore()

	r := router.NewRouter(cfg, sessions)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
