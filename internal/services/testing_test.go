package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
)

// setupTestDB opens the shared in-memory database and resets every table.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Block{},
		&models.Wallet{},
		&models.WalletEntry{},
		&models.SpinSlot{},
		&models.SpinRecord{},
		&models.CoinPackage{},
		&models.CoinPayment{},
		&models.DownloadPrice{},
		&models.DownloadRecord{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Message{},
		&models.Room{},
		&models.RoomMember{},
		&models.GroupInvite{},
		&models.Notification{},
		&models.AdminUser{},
		&models.AdminLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	tables := []string{
		"users", "follows", "blocks",
		"wallets", "wallet_entries", "spin_slots", "spin_records",
		"coin_packages", "coin_payments", "download_prices", "download_records",
		"posts", "likes", "comments", "messages",
		"rooms", "room_members", "group_invites", "notifications",
		"admin_users", "admin_logs",
	}
	for _, table := range tables {
		db.Exec("DELETE FROM " + table)
	}

	return db
}

// createTestUser inserts a user with a derived username and email.
func createTestUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	user := models.User{
		ID:           id,
		Username:     fmt.Sprintf("user%d", id),
		Email:        fmt.Sprintf("user%d@example.com", id),
		PasswordHash: "x",
		Visibility:   models.VisibilityPublic,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %d: %v", id, err)
	}
	return &user
}

// captureEmitter records emitted events for assertions.
type captureEmitter struct {
	events []notify.Event
}

func (c *captureEmitter) Emit(event notify.Event) {
	c.events = append(c.events, event)
}
