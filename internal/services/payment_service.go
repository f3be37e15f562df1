package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/gateway"
	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// PaymentService handles coin package purchases. The gateway is trusted
// only to mint order ids; success is proven by an HMAC signature that this
// service verifies itself.
type PaymentService struct {
	db      *gorm.DB
	wallets *WalletService
	gateway gateway.PaymentGateway
	secret  []byte
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(db *gorm.DB, wallets *WalletService, gw gateway.PaymentGateway, signingSecret string) *PaymentService {
	return &PaymentService{
		db:      db,
		wallets: wallets,
		gateway: gw,
		secret:  []byte(signingSecret),
	}
}

// ListPackages returns coin packages, optionally including inactive ones.
func (s *PaymentService) ListPackages(includeInactive bool) ([]models.CoinPackage, error) {
	query := s.db.Order("coins ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var packages []models.CoinPackage
	if err := query.Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// CreatePackage adds a purchasable coin bundle.
func (s *PaymentService) CreatePackage(name string, coins int64, price decimal.Decimal, currency string) (*models.CoinPackage, error) {
	if coins <= 0 || price.IsNegative() {
		return nil, ErrInvalidAmount
	}

	pkg := models.CoinPackage{
		Name:     name,
		Coins:    coins,
		Price:    price,
		Currency: currency,
		IsActive: true,
	}
	if err := s.db.Create(&pkg).Error; err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return &pkg, nil
}

// UpdatePackage replaces the mutable fields of a package.
func (s *PaymentService) UpdatePackage(id uint, name string, coins int64, price decimal.Decimal, isActive bool) (*models.CoinPackage, error) {
	var pkg models.CoinPackage
	if err := s.db.First(&pkg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	if coins <= 0 || price.IsNegative() {
		return nil, ErrInvalidAmount
	}

	pkg.Name = name
	pkg.Coins = coins
	pkg.Price = price
	pkg.IsActive = isActive
	if err := s.db.Save(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// PurchaseCoins opens a payment for a package: an order is created with the
// gateway and tracked as a CoinPayment in status created.
func (s *PaymentService) PurchaseCoins(userID, packageID uint) (*models.CoinPayment, error) {
	var pkg models.CoinPackage
	if err := s.db.Where("id = ? AND is_active = ?", packageID, true).First(&pkg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	orderID, err := s.gateway.CreateOrder(pkg.Price, pkg.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	payment := models.CoinPayment{
		OrderID:   orderID,
		UserID:    userID,
		PackageID: pkg.ID,
		Amount:    pkg.Price,
		Coins:     pkg.Coins,
		Status:    models.PaymentStatusCreated,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	log.Printf("Payment %s created for user %d (package %d, %d coins)", orderID, userID, pkg.ID, pkg.Coins)
	return &payment, nil
}

// Sign computes the HMAC-SHA256 signature over "orderID|paymentID". The
// gateway webhook is expected to carry exactly this value.
func (s *PaymentService) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPurchase settles a payment. A valid signature marks it success and
// credits the wallet exactly once: re-verifying an already successful
// payment returns it without crediting again. An invalid signature marks
// the payment failed; both outcomes are terminal.
func (s *PaymentService) VerifyPurchase(orderID, paymentID, signature string) (*models.CoinPayment, error) {
	var payment models.CoinPayment
	var badSignature bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrPaymentNotFound
			}
			return err
		}

		switch payment.Status {
		case models.PaymentStatusSuccess:
			// Duplicate verification call; the wallet was already credited.
			return nil
		case models.PaymentStatusFailed:
			return ErrPaymentFinalized
		}

		expected := s.Sign(orderID, paymentID)
		if !hmac.Equal([]byte(expected), []byte(signature)) {
			badSignature = true
			payment.Status = models.PaymentStatusFailed
			payment.PaymentID = &paymentID
			return tx.Save(&payment).Error
		}

		payment.Status = models.PaymentStatusSuccess
		payment.PaymentID = &paymentID
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		return s.wallets.creditTx(tx, payment.UserID, payment.Coins, models.EntryPurchase,
			fmt.Sprintf("Purchased %d coins (order %s)", payment.Coins, orderID))
	})
	if err != nil {
		return nil, err
	}

	if badSignature {
		log.Printf("INTEGRITY: signature mismatch for order %s (payment %s), marked failed", orderID, paymentID)
		return nil, ErrInvalidSignature
	}

	return &payment, nil
}

// GetPayment returns a payment by order id.
func (s *PaymentService) GetPayment(orderID string) (*models.CoinPayment, error) {
	var payment models.CoinPayment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}
