package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// CoinPackage is an admin-defined purchasable bundle of coins.
type CoinPackage struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Coins     int64           `gorm:"not null" json:"coins"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Currency  string          `gorm:"size:10;not null;default:INR" json:"currency"`
	IsActive  bool            `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (CoinPackage) TableName() string {
	return "coin_packages"
}

// CoinPayment tracks one purchase attempt. Status moves from created to
// exactly one of success or failed and never transitions again.
type CoinPayment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"uniqueIndex;size:64;not null" json:"order_id"`
	PaymentID *string         `gorm:"size:64" json:"payment_id,omitempty"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	User      *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PackageID uint            `gorm:"not null" json:"package_id"`
	Package   *CoinPackage    `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Coins     int64           `gorm:"not null" json:"coins"`
	Status    PaymentStatus   `gorm:"size:20;not null;default:created;index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (CoinPayment) TableName() string {
	return "coin_payments"
}
