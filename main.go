// @title LearnSphere API
// @version 1.0
// @description Backend for the LearnSphere personalized learning platform. Learners register, request topic-based lessons, and receive AI-generated content persisted as learning sessions.

// @host localhost:5000
// @BasePath /api

package main

import (
	"flag"
	"log"

	"learnsphere_backend/internal/app"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	resetSchema := flag.Bool("reset-schema", false, "drop and recreate all tables before migrating (destroys all data)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly
	cfg.ResetSchema = *resetSchema

	application := app.NewApp(cfg)
	defer logger.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
