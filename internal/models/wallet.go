package models

import (
	"time"
)

type WalletEntryType string

const (
	EntrySpin             WalletEntryType = "spin"
	EntryBonus            WalletEntryType = "bonus"
	EntryPurchase         WalletEntryType = "purchase"
	EntryDownload         WalletEntryType = "download"
	EntryTransferSent     WalletEntryType = "transfer_sent"
	EntryTransferReceived WalletEntryType = "transfer_received"
	EntryPostReward       WalletEntryType = "post_reward"
	EntryAdmin            WalletEntryType = "admin"
)

// Wallet holds a user's coin balance. Coins never goes negative; every
// mutation is paired with a WalletEntry so the balance always equals the
// sum of the entries.
type Wallet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Coins     int64     `gorm:"not null;default:0" json:"coins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// WalletEntry is one append-only ledger line with a signed coin delta.
type WalletEntry struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Type      WalletEntryType `gorm:"size:30;not null;index" json:"type"`
	Coins     int64           `gorm:"not null" json:"coins"`
	Message   string          `gorm:"size:255" json:"message"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
}

func (WalletEntry) TableName() string {
	return "wallet_entries"
}
