package models

import (
	"time"
)

// WheelSlotCount is the number of active slots a servable wheel must have.
const WheelSlotCount = 8

// SpinSlot is one reward outcome on the spin wheel, addressed by position.
type SpinSlot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Position  int       `gorm:"uniqueIndex;not null" json:"position"` // 1..8
	Label     string    `gorm:"size:100;not null" json:"label"`
	Coins     int64     `gorm:"not null;default:0" json:"coins"`
	SpinAgain bool      `gorm:"default:false" json:"spin_again"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpinSlot) TableName() string {
	return "spin_slots"
}

// SpinRecord is one spin attempt. SpinDate is normalized to UTC midnight
// and drives the per-day quota count.
type SpinRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_spin_user_day" json:"user_id"`
	SlotPosition int       `gorm:"not null" json:"slot_position"`
	Reward       string    `gorm:"size:100" json:"reward"`
	CoinsAwarded int64     `gorm:"not null" json:"coins_awarded"`
	SpinDate     time.Time `gorm:"not null;index:idx_spin_user_day" json:"spin_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SpinRecord) TableName() string {
	return "spin_records"
}
