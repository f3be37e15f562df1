package models

import (
	"time"
)

type ProfileVisibility string

const (
	VisibilityPublic  ProfileVisibility = "public"
	VisibilityPrivate ProfileVisibility = "private"
)

// User represents a user account in the system
type User struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Username     string            `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string            `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string            `gorm:"size:255;not null" json:"-"`
	FullName     string            `gorm:"size:100" json:"full_name"`
	Bio          string            `gorm:"size:500" json:"bio"`
	AvatarURL    *string           `gorm:"size:500" json:"avatar_url,omitempty"`
	Visibility   ProfileVisibility `gorm:"size:10;not null;default:public" json:"profile_visibility"`
	Deactivated  bool              `gorm:"default:false;index" json:"deactivated"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
