package database

import (
	"fmt"
	"log"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect establishes a connection to the PostgreSQL database
func Connect(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Error),
		DisableForeignKeyConstraintWhenMigrating: true,
	})

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate() error {
	// Migrate identity and graph models first
	graphModels := []interface{}{
		&models.User{},
		&models.Follow{},
		&models.Block{},
	}

	for _, model := range graphModels {
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("Warning: migration issue for %T: %v", model, err)
		}
	}

	// Migrate wallet and reward models
	walletModels := []interface{}{
		&models.Wallet{},
		&models.WalletEntry{},
		&models.SpinSlot{},
		&models.SpinRecord{},
		&models.CoinPackage{},
		&models.CoinPayment{},
		&models.DownloadPrice{},
		&models.DownloadRecord{},
	}

	for _, model := range walletModels {
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("Warning: migration issue for %T: %v", model, err)
		}
	}

	// Migrate content and messaging models
	contentModels := []interface{}{
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Message{},
		&models.Room{},
		&models.RoomMember{},
		&models.GroupInvite{},
		&models.Notification{},
	}

	for _, model := range contentModels {
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("Warning: migration issue for %T: %v", model, err)
		}
	}

	// Migrate admin models
	adminModels := []interface{}{
		&models.AdminUser{},
		&models.AdminLog{},
	}

	for _, model := range adminModels {
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("Warning: migration issue for %T: %v", model, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
