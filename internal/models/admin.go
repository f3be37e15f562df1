package models

import (
	"time"
)

// AdminUser represents an admin with access to the management endpoints
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      string    `gorm:"size:20;not null" json:"role"` // SUPER_ADMIN, MODERATOR
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminLog records an admin action for auditing.
type AdminLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	TargetID  *uint     `json:"target_id,omitempty"`
	Details   string    `gorm:"size:500" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
