package services

import (
	"testing"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
	"gorm.io/gorm"
)

func seedFriendship(t *testing.T, db *gorm.DB, a, b uint) {
	t.Helper()
	follow := models.Follow{FollowerID: a, FolloweeID: b, State: models.FollowStateAccepted}
	if err := db.Create(&follow).Error; err != nil {
		t.Fatalf("failed to seed friendship: %v", err)
	}
}

func walletBalance(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var wallet models.Wallet
	if err := db.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0
		}
		t.Fatalf("failed to load wallet %d: %v", userID, err)
	}
	return wallet.Coins
}

func TestEnsureWalletCreatesWithBonus(t *testing.T) {
	db := setupTestDB(t)
	service := NewWalletService(db, 10)
	createTestUser(t, db, 1)

	wallet, err := service.EnsureWallet(1)
	if err != nil {
		t.Fatalf("EnsureWallet failed: %v", err)
	}
	if wallet.Coins != 10 {
		t.Errorf("expected 10 bonus coins, got %d", wallet.Coins)
	}

	var entries []models.WalletEntry
	db.Where("user_id = ?", 1).Find(&entries)
	if len(entries) != 1 || entries[0].Type != models.EntryBonus || entries[0].Coins != 10 {
		t.Errorf("expected single bonus entry of +10, got %+v", entries)
	}

	// Ensuring again must not grant a second bonus.
	wallet, err = service.EnsureWallet(1)
	if err != nil {
		t.Fatalf("second EnsureWallet failed: %v", err)
	}
	if wallet.Coins != 10 {
		t.Errorf("expected balance unchanged at 10, got %d", wallet.Coins)
	}
}

func TestTransferCoinsConservesTotal(t *testing.T) {
	db := setupTestDB(t)
	service := NewWalletService(db, 10)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	seedFriendship(t, db, 1, 2)

	if err := service.AdminAdjust(1, 90, "seed"); err != nil {
		t.Fatalf("AdminAdjust failed: %v", err)
	}
	// Wallet 1: 10 bonus + 90 = 100.

	senderBefore := walletBalance(t, db, 1)
	recipientBefore := walletBalance(t, db, 2)

	if err := service.TransferCoins(1, 2, 30); err != nil {
		t.Fatalf("TransferCoins failed: %v", err)
	}

	senderAfter := walletBalance(t, db, 1)
	recipientAfter := walletBalance(t, db, 2)

	if senderBefore-30 != senderAfter {
		t.Errorf("sender: expected %d, got %d", senderBefore-30, senderAfter)
	}
	// Recipient wallet is created lazily with the 10-coin bonus.
	if recipientAfter != recipientBefore+10+30 {
		t.Errorf("recipient: expected %d, got %d", recipientBefore+10+30, recipientAfter)
	}

	var sent, received models.WalletEntry
	if err := db.Where("user_id = ? AND type = ?", 1, models.EntryTransferSent).First(&sent).Error; err != nil {
		t.Fatalf("missing transfer_sent entry: %v", err)
	}
	if sent.Coins != -30 {
		t.Errorf("transfer_sent delta: expected -30, got %d", sent.Coins)
	}
	if err := db.Where("user_id = ? AND type = ?", 2, models.EntryTransferReceived).First(&received).Error; err != nil {
		t.Fatalf("missing transfer_received entry: %v", err)
	}
	if received.Coins != 30 {
		t.Errorf("transfer_received delta: expected +30, got %d", received.Coins)
	}

	for _, userID := range []uint{1, 2} {
		balance, sum, ok, err := service.Reconcile(userID)
		if err != nil {
			t.Fatalf("Reconcile(%d) failed: %v", userID, err)
		}
		if !ok {
			t.Errorf("wallet %d out of balance: coins=%d ledger=%d", userID, balance, sum)
		}
	}
}

func TestTransferCoinsInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	service := NewWalletService(db, 10)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	seedFriendship(t, db, 2, 1)

	if _, err := service.EnsureWallet(1); err != nil {
		t.Fatalf("EnsureWallet failed: %v", err)
	}

	if err := service.TransferCoins(1, 2, 50); err != ErrInsufficientCoins {
		t.Errorf("expected ErrInsufficientCoins, got %v", err)
	}

	if got := walletBalance(t, db, 1); got != 10 {
		t.Errorf("failed transfer must not change sender balance, got %d", got)
	}
	if got := walletBalance(t, db, 2); got != 0 {
		t.Errorf("failed transfer must not create recipient coins, got %d", got)
	}
	var entries int64
	db.Model(&models.WalletEntry{}).Where("type IN ?", []models.WalletEntryType{
		models.EntryTransferSent, models.EntryTransferReceived,
	}).Count(&entries)
	if entries != 0 {
		t.Errorf("failed transfer must not write transfer entries, got %d", entries)
	}
}

func TestTransferCoinsValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewWalletService(db, 10)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)
	seedFriendship(t, db, 1, 2)

	if err := service.TransferCoins(1, 2, 0); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if err := service.TransferCoins(1, 2, -5); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount for negative, got %v", err)
	}
	if err := service.TransferCoins(1, 1, 5); err != ErrSelfTransfer {
		t.Errorf("expected ErrSelfTransfer, got %v", err)
	}
	if err := service.TransferCoins(1, 3, 5); err != ErrNotFriends {
		t.Errorf("expected ErrNotFriends, got %v", err)
	}
	if err := service.TransferCoins(1, 99, 5); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminAdjustRespectsFloor(t *testing.T) {
	db := setupTestDB(t)
	service := NewWalletService(db, 10)
	createTestUser(t, db, 1)

	if err := service.AdminAdjust(1, 20, "grant"); err != nil {
		t.Fatalf("AdminAdjust failed: %v", err)
	}
	if got := walletBalance(t, db, 1); got != 30 {
		t.Errorf("expected 30 after grant, got %d", got)
	}

	if err := service.AdminAdjust(1, -100, "clawback"); err != ErrInsufficientCoins {
		t.Errorf("expected ErrInsufficientCoins, got %v", err)
	}
	if err := service.AdminAdjust(1, -30, "clawback"); err != nil {
		t.Fatalf("AdminAdjust debit failed: %v", err)
	}
	if got := walletBalance(t, db, 1); got != 0 {
		t.Errorf("expected 0 after clawback, got %d", got)
	}

	if _, _, ok, err := service.Reconcile(1); err != nil || !ok {
		t.Errorf("ledger out of balance after adjustments (ok=%v err=%v)", ok, err)
	}
}
