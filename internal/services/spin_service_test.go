package services

import (
	"fmt"
	"testing"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"gorm.io/gorm"
)

// seedWheel creates the eight active slots. Position 1 awards 5 coins,
// position 2 awards nothing, position 3 is a spin-again slot.
func seedWheel(t *testing.T, db *gorm.DB) {
	t.Helper()
	for position := 1; position <= models.WheelSlotCount; position++ {
		slot := models.SpinSlot{
			Position: position,
			Label:    fmt.Sprintf("Slot %d", position),
			Coins:    0,
			IsActive: true,
		}
		switch position {
		case 1:
			slot.Coins = 5
		case 3:
			slot.SpinAgain = true
		}
		if err := db.Create(&slot).Error; err != nil {
			t.Fatalf("failed to seed slot %d: %v", position, err)
		}
	}
}

func TestFirstSpinCreatesWalletWithBonus(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 20)
	createTestUser(t, db, 1)
	seedWheel(t, db)

	result, err := service.Spin(1, 1)
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}

	if result.LimitReached {
		t.Fatal("first spin must not hit the daily limit")
	}
	if result.Coins != 5 {
		t.Errorf("expected 5 coins won, got %d", result.Coins)
	}
	if result.Balance != 15 {
		t.Errorf("expected balance 15 (10 bonus + 5 spin), got %d", result.Balance)
	}
	if result.SpinsUsed != 1 || result.SpinsLeft != 19 {
		t.Errorf("expected 1 used / 19 left, got %d/%d", result.SpinsUsed, result.SpinsLeft)
	}

	var entries []models.WalletEntry
	db.Where("user_id = ?", 1).Order("id ASC").Find(&entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(entries))
	}
	if entries[0].Type != models.EntryBonus || entries[0].Coins != 10 {
		t.Errorf("first entry: expected bonus +10, got %s %d", entries[0].Type, entries[0].Coins)
	}
	if entries[1].Type != models.EntrySpin || entries[1].Coins != 5 {
		t.Errorf("second entry: expected spin +5, got %s %d", entries[1].Type, entries[1].Coins)
	}
}

func TestSpinDailyLimit(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 2)
	createTestUser(t, db, 1)
	seedWheel(t, db)

	for i := 0; i < 2; i++ {
		result, err := service.Spin(1, 2)
		if err != nil {
			t.Fatalf("spin %d failed: %v", i+1, err)
		}
		if result.LimitReached {
			t.Fatalf("spin %d hit the limit early", i+1)
		}
	}

	result, err := service.Spin(1, 2)
	if err != nil {
		t.Fatalf("limit-reached spin must not error: %v", err)
	}
	if !result.LimitReached {
		t.Error("expected limit reached outcome")
	}
	if result.SpinsUsed != 2 || result.SpinsLeft != 0 {
		t.Errorf("expected 2 used / 0 left, got %d/%d", result.SpinsUsed, result.SpinsLeft)
	}

	// The refused attempt is not recorded.
	var records int64
	db.Model(&models.SpinRecord{}).Where("user_id = ?", 1).Count(&records)
	if records != 2 {
		t.Errorf("expected 2 spin records, got %d", records)
	}
}

func TestSpinAgainStillConsumesQuota(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 20)
	createTestUser(t, db, 1)
	seedWheel(t, db)

	result, err := service.Spin(1, 3)
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if !result.SpinAgain {
		t.Error("expected spin_again flag")
	}
	if result.SpinsUsed != 1 {
		t.Errorf("spin-again slot must still consume quota, used=%d", result.SpinsUsed)
	}
}

func TestSpinInvalidSlot(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 20)
	createTestUser(t, db, 1)
	seedWheel(t, db)

	if _, err := service.Spin(1, 99); err != ErrInvalidSlot {
		t.Errorf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestWheelNotServableWithoutEightSlots(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 20)
	createTestUser(t, db, 1)
	seedWheel(t, db)

	// Deactivate one slot: the wheel must stop being servable.
	db.Model(&models.SpinSlot{}).Where("position = ?", 8).Update("is_active", false)

	if _, err := service.Spin(1, 1); err != ErrWheelNotConfigured {
		t.Errorf("expected ErrWheelNotConfigured, got %v", err)
	}
	if _, err := service.GetWheel(); err != ErrWheelNotConfigured {
		t.Errorf("expected ErrWheelNotConfigured from GetWheel, got %v", err)
	}
}

func TestUpsertSlotValidation(t *testing.T) {
	db := setupTestDB(t)
	wallets := NewWalletService(db, 10)
	service := NewSpinService(db, wallets, 20)

	if _, err := service.UpsertSlot(0, "bad", 1, false, true); err != ErrInvalidSlot {
		t.Errorf("expected ErrInvalidSlot for position 0, got %v", err)
	}
	if _, err := service.UpsertSlot(9, "bad", 1, false, true); err != ErrInvalidSlot {
		t.Errorf("expected ErrInvalidSlot for position 9, got %v", err)
	}

	slot, err := service.UpsertSlot(4, "Jackpot", 100, false, true)
	if err != nil {
		t.Fatalf("UpsertSlot failed: %v", err)
	}

	// Upserting the same position replaces, never duplicates.
	updated, err := service.UpsertSlot(4, "Jackpot v2", 50, false, true)
	if err != nil {
		t.Fatalf("second UpsertSlot failed: %v", err)
	}
	if updated.ID != slot.ID {
		t.Errorf("expected same slot row, got %d and %d", slot.ID, updated.ID)
	}

	var count int64
	db.Model(&models.SpinSlot{}).Where("position = ?", 4).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 slot at position 4, got %d", count)
	}
}
