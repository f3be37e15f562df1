package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// WalletService owns every coin balance mutation. Balances never go
// negative and every change appends a ledger entry, so a wallet's coins
// always equal the sum of its entries.
type WalletService struct {
	db         *gorm.DB
	bonusCoins int64
}

// NewWalletService creates a new WalletService. bonusCoins is credited once
// when a wallet is first created.
func NewWalletService(db *gorm.DB, bonusCoins int64) *WalletService {
	return &WalletService{db: db, bonusCoins: bonusCoins}
}

// EnsureWallet returns the user's wallet, creating it with the starting
// bonus on first use.
func (s *WalletService) EnsureWallet(userID uint) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		wallet, err = s.ensureWalletTx(tx, userID)
		return err
	})
	return wallet, err
}

// GetWallet returns the wallet, or a zero-balance view when none has been
// created yet. Reading never creates a wallet.
func (s *WalletService) GetWallet(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.Where("user_id = ?", userID).First(&wallet).Error
	if err == gorm.ErrRecordNotFound {
		return &models.Wallet{UserID: userID, Coins: 0}, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// History returns the wallet ledger, newest first.
func (s *WalletService) History(userID uint, limit int) ([]models.WalletEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.WalletEntry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// TransferCoins moves coins between two friends. Debit, credit and both
// ledger entries commit together or not at all.
func (s *WalletService) TransferCoins(senderID, friendID uint, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if senderID == friendID {
		return ErrSelfTransfer
	}

	var sender, recipient models.User
	if err := s.db.First(&sender, senderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.db.First(&recipient, friendID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	if recipient.Deactivated {
		return ErrAccountDeactivated
	}

	// Transfers require any accepted follow between the two, in either
	// direction. This is looser than the mutual follow chat gate.
	var links int64
	if err := s.db.Model(&models.Follow{}).
		Where("((follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)) AND state = ?",
			senderID, friendID, friendID, senderID, models.FollowStateAccepted).
		Count(&links).Error; err != nil {
		return err
	}
	if links == 0 {
		return ErrNotFriends
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.debitTx(tx, senderID, amount, models.EntryTransferSent,
			fmt.Sprintf("Sent %d coins to %s", amount, recipient.Username)); err != nil {
			return err
		}
		return s.creditTx(tx, friendID, amount, models.EntryTransferReceived,
			fmt.Sprintf("Received %d coins from %s", amount, sender.Username))
	})
}

// AdminAdjust applies a signed correction to a wallet. Negative deltas are
// still bounded by the non-negative balance rule.
func (s *WalletService) AdminAdjust(userID uint, delta int64, note string) error {
	if delta == 0 {
		return ErrInvalidAmount
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if delta > 0 {
			return s.creditTx(tx, userID, delta, models.EntryAdmin, note)
		}
		return s.debitTx(tx, userID, -delta, models.EntryAdmin, note)
	})
}

// Reconcile recomputes a wallet's balance from its ledger. A mismatch is an
// integrity failure and is logged loudly.
func (s *WalletService) Reconcile(userID uint) (balance int64, ledgerSum int64, ok bool, err error) {
	wallet, err := s.GetWallet(userID)
	if err != nil {
		return 0, 0, false, err
	}

	row := s.db.Model(&models.WalletEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(coins), 0)").Row()
	if err := row.Scan(&ledgerSum); err != nil {
		return 0, 0, false, err
	}

	ok = wallet.Coins == ledgerSum
	if !ok {
		log.Printf("INTEGRITY: wallet %d balance %d does not match ledger sum %d", userID, wallet.Coins, ledgerSum)
	}
	return wallet.Coins, ledgerSum, ok, nil
}

// ensureWalletTx loads or creates the wallet inside an open transaction.
func (s *WalletService) ensureWalletTx(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Where("user_id = ?", userID).First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	wallet = models.Wallet{UserID: userID, Coins: s.bonusCoins}
	if err := tx.Create(&wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if s.bonusCoins > 0 {
		entry := models.WalletEntry{
			UserID:  userID,
			Type:    models.EntryBonus,
			Coins:   s.bonusCoins,
			Message: "Welcome bonus",
		}
		if err := tx.Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("failed to record bonus entry: %w", err)
		}
	}

	log.Printf("Wallet created for user %d with %d bonus coins", userID, s.bonusCoins)
	return &wallet, nil
}

// creditTx adds coins and appends the matching ledger entry. A zero credit
// still writes its entry.
func (s *WalletService) creditTx(tx *gorm.DB, userID uint, coins int64, entryType models.WalletEntryType, message string) error {
	if coins < 0 {
		return ErrInvalidAmount
	}

	if _, err := s.ensureWalletTx(tx, userID); err != nil {
		return err
	}

	if coins > 0 {
		if err := tx.Model(&models.Wallet{}).
			Where("user_id = ?", userID).
			Update("coins", gorm.Expr("coins + ?", coins)).Error; err != nil {
			return fmt.Errorf("failed to credit wallet: %w", err)
		}
	}

	entry := models.WalletEntry{
		UserID:  userID,
		Type:    entryType,
		Coins:   coins,
		Message: message,
	}
	return tx.Create(&entry).Error
}

// debitTx removes coins with a server-side balance guard: the update only
// lands when the remaining balance stays non-negative, which closes the
// concurrent-overdraft race without a separate lock.
func (s *WalletService) debitTx(tx *gorm.DB, userID uint, coins int64, entryType models.WalletEntryType, message string) error {
	if coins <= 0 {
		return ErrInvalidAmount
	}

	if _, err := s.ensureWalletTx(tx, userID); err != nil {
		return err
	}

	result := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND coins >= ?", userID, coins).
		Update("coins", gorm.Expr("coins - ?", coins))
	if result.Error != nil {
		return fmt.Errorf("failed to debit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientCoins
	}

	entry := models.WalletEntry{
		UserID:  userID,
		Type:    entryType,
		Coins:   -coins,
		Message: message,
	}
	return tx.Create(&entry).Error
}
