package main

import (
	"os"

	"task-tracker-api/internal/database"
	"task-tracker-api/internal/handlers"
	"task-tracker-api/internal/logging"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/routes"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the process environment wins either way
	_ = godotenv.Load(".env")

	logging.InitLogger(os.Getenv("LOG_FILE"))
	logging.Logger.Info("Starting task tracker API...")

	dbPath := os.Getenv("SQLITE_PATH")
	if dbPath == "" {
		dbPath = "task-tracker.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logging.Logger.Fatalf("Failed to open database: %v", err)
	}
	logging.Logger.Infof("Database connected and migrated (%s)", dbPath)

	hub := realtime.NewHub()
	h := handlers.New(db, hub)
	ginRoutes := routes.SetupRoutes(h)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8008" // This is customizable based on the environment
	}

	logging.Logger.Infof("Server starting on port :%s", port)
	if err := ginRoutes.Run(":" + port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
