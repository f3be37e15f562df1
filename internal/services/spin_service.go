package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// SpinService runs the spin-reward game against a per-day attempt quota.
type SpinService struct {
	db            *gorm.DB
	wallets       *WalletService
	maxDailySpins int
}

// NewSpinService creates a new SpinService
func NewSpinService(db *gorm.DB, wallets *WalletService, maxDailySpins int) *SpinService {
	return &SpinService{db: db, wallets: wallets, maxDailySpins: maxDailySpins}
}

// SpinResult is the outcome of one spin call. LimitReached is a normal
// terminal outcome of the day's game, not an error.
type SpinResult struct {
	LimitReached bool   `json:"limit_reached"`
	Reward       string `json:"reward,omitempty"`
	Coins        int64  `json:"coins"`
	SpinAgain    bool   `json:"spin_again"`
	SpinsUsed    int    `json:"spins_used"`
	SpinsLeft    int    `json:"spins_left"`
	Balance      int64  `json:"balance"`
}

// Spin plays the slot at the given wheel position. The quota check, spin
// record, wallet credit and ledger entry commit as one transaction.
func (s *SpinService) Spin(userID uint, position int) (*SpinResult, error) {
	if err := s.checkWheelServable(s.db); err != nil {
		return nil, err
	}

	today := utcMidnight(time.Now())
	var result SpinResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var used int64
		if err := tx.Model(&models.SpinRecord{}).
			Where("user_id = ? AND spin_date = ?", userID, today).
			Count(&used).Error; err != nil {
			return err
		}

		if int(used) >= s.maxDailySpins {
			wallet, err := s.wallets.GetWallet(userID)
			if err != nil {
				return err
			}
			result = SpinResult{
				LimitReached: true,
				SpinsUsed:    int(used),
				SpinsLeft:    0,
				Balance:      wallet.Coins,
			}
			return nil
		}

		var slot models.SpinSlot
		if err := tx.Where("position = ? AND is_active = ?", position, true).
			First(&slot).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInvalidSlot
			}
			return err
		}

		record := models.SpinRecord{
			UserID:       userID,
			SlotPosition: slot.Position,
			Reward:       slot.Label,
			CoinsAwarded: slot.Coins,
			SpinDate:     today,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record spin: %w", err)
		}

		if err := s.wallets.creditTx(tx, userID, slot.Coins, models.EntrySpin,
			fmt.Sprintf("Spin reward: %s", slot.Label)); err != nil {
			return err
		}

		var wallet models.Wallet
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}

		// A spin-again slot grants another click but the spin just taken
		// still counts against the day's quota.
		result = SpinResult{
			Reward:    slot.Label,
			Coins:     slot.Coins,
			SpinAgain: slot.SpinAgain,
			SpinsUsed: int(used) + 1,
			SpinsLeft: s.maxDailySpins - int(used) - 1,
			Balance:   wallet.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetWheel returns the active slots ordered by position.
func (s *SpinService) GetWheel() ([]models.SpinSlot, error) {
	if err := s.checkWheelServable(s.db); err != nil {
		return nil, err
	}

	var slots []models.SpinSlot
	if err := s.db.Where("is_active = ?", true).
		Order("position ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// SpinsToday returns used and remaining quota for the user.
func (s *SpinService) SpinsToday(userID uint) (used int, left int, err error) {
	var count int64
	err = s.db.Model(&models.SpinRecord{}).
		Where("user_id = ? AND spin_date = ?", userID, utcMidnight(time.Now())).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}
	left = s.maxDailySpins - int(count)
	if left < 0 {
		left = 0
	}
	return int(count), left, nil
}

// UpsertSlot creates or replaces the slot at a wheel position.
func (s *SpinService) UpsertSlot(position int, label string, coins int64, spinAgain, isActive bool) (*models.SpinSlot, error) {
	if position < 1 || position > models.WheelSlotCount {
		return nil, ErrInvalidSlot
	}
	if coins < 0 {
		return nil, ErrInvalidAmount
	}

	var slot models.SpinSlot
	err := s.db.Where("position = ?", position).First(&slot).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	slot.Position = position
	slot.Label = label
	slot.Coins = coins
	slot.SpinAgain = spinAgain
	slot.IsActive = isActive

	if err == gorm.ErrRecordNotFound {
		if err := s.db.Create(&slot).Error; err != nil {
			return nil, err
		}
		return &slot, nil
	}
	if err := s.db.Save(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// checkWheelServable enforces the exactly-eight-active-slots invariant.
func (s *SpinService) checkWheelServable(db *gorm.DB) error {
	var active int64
	if err := db.Model(&models.SpinSlot{}).
		Where("is_active = ?", true).
		Count(&active).Error; err != nil {
		return err
	}
	if active != models.WheelSlotCount {
		return ErrWheelNotConfigured
	}
	return nil
}

// utcMidnight normalizes a time to its UTC date bucket.
func utcMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
