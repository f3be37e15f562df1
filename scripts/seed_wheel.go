package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Seeds the eight spin wheel slots and the default download prices.
// Safe to re-run: existing rows are updated in place.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Build connection string
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")

	slots := []struct {
		position  int
		label     string
		coins     int64
		spinAgain bool
	}{
		{1, "5 Coins", 5, false},
		{2, "Try Again", 0, false},
		{3, "10 Coins", 10, false},
		{4, "Spin Again", 0, true},
		{5, "2 Coins", 2, false},
		{6, "20 Coins", 20, false},
		{7, "1 Coin", 1, false},
		{8, "50 Coins", 50, false},
	}

	for _, slot := range slots {
		_, err := db.Exec(`
			INSERT INTO spin_slots (position, label, coins, spin_again, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
			ON CONFLICT (position) DO UPDATE
			SET label = EXCLUDED.label,
			    coins = EXCLUDED.coins,
			    spin_again = EXCLUDED.spin_again,
			    is_active = TRUE,
			    updated_at = NOW()
		`, slot.position, slot.label, slot.coins, slot.spinAgain)
		if err != nil {
			log.Fatalf("Failed to seed slot %d: %v", slot.position, err)
		}
	}
	fmt.Println("✅ Seeded 8 wheel slots")

	prices := map[string]int64{
		"image": 2,
		"video": 5,
		"audio": 3,
		"file":  1,
	}

	for mediaType, coins := range prices {
		_, err := db.Exec(`
			INSERT INTO download_prices (media_type, coins, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (media_type) DO UPDATE
			SET coins = EXCLUDED.coins,
			    updated_at = NOW()
		`, mediaType, coins)
		if err != nil {
			log.Fatalf("Failed to seed download price for %s: %v", mediaType, err)
		}
	}
	fmt.Println("✅ Seeded download prices")
}
