package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// DownloadService charges coins for media downloads at admin-configured
// per-type prices and keeps a separate download audit trail.
type DownloadService struct {
	db      *gorm.DB
	wallets *WalletService
}

// NewDownloadService creates a new DownloadService
func NewDownloadService(db *gorm.DB, wallets *WalletService) *DownloadService {
	return &DownloadService{db: db, wallets: wallets}
}

// SetPrice configures the coin cost for one media type.
func (s *DownloadService) SetPrice(mediaType models.MediaType, coins int64) (*models.DownloadPrice, error) {
	if coins < 0 {
		return nil, ErrInvalidAmount
	}

	var price models.DownloadPrice
	err := s.db.Where("media_type = ?", mediaType).First(&price).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	price.MediaType = mediaType
	price.Coins = coins

	if err == gorm.ErrRecordNotFound {
		if err := s.db.Create(&price).Error; err != nil {
			return nil, err
		}
		return &price, nil
	}
	if err := s.db.Save(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

// ListPrices returns the configured download prices.
func (s *DownloadService) ListPrices() ([]models.DownloadPrice, error) {
	var prices []models.DownloadPrice
	if err := s.db.Order("media_type ASC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// ChargeForDownload debits the configured price for the post's media type
// and records both the ledger entry and the download audit row in one
// transaction. Returns the charged amount.
func (s *DownloadService) ChargeForDownload(userID, postID uint) (int64, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	var price models.DownloadPrice
	if err := s.db.Where("media_type = ?", post.MediaType).First(&price).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrPriceNotConfigured
		}
		return 0, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if price.Coins > 0 {
			if err := s.wallets.debitTx(tx, userID, price.Coins, models.EntryDownload,
				fmt.Sprintf("Downloaded %s from post %d", post.MediaType, post.ID)); err != nil {
				return err
			}
		}

		record := models.DownloadRecord{
			UserID:    userID,
			PostID:    post.ID,
			MediaType: post.MediaType,
			Coins:     price.Coins,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return 0, err
	}

	return price.Coins, nil
}
