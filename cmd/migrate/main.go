package main

import (
	"log"

	"github.com/ganapathi9191/Social-media-sub000/internal/config"
	"github.com/ganapathi9191/Social-media-sub000/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run the schema migration
	log.Println("Running schema migration...")
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("✅ Migration applied successfully!")
}
