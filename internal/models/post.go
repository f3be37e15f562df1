package models

import (
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaFile  MediaType = "file"
)

// Post is a piece of user content. The media blob itself lives with the
// media store collaborator; only the returned URL is kept here.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Caption   string    `gorm:"size:2000" json:"caption"`
	MediaType MediaType `gorm:"size:10;not null;index" json:"media_type"`
	MediaURL  string    `gorm:"size:500" json:"media_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// Like marks that a user liked a post, once.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_pair;index" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Comment is a user comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Body      string    `gorm:"size:1000;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// DownloadPrice is the admin-configured coin cost to download media of a
// given type.
type DownloadPrice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MediaType MediaType `gorm:"uniqueIndex;size:10;not null" json:"media_type"`
	Coins     int64     `gorm:"not null" json:"coins"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DownloadPrice) TableName() string {
	return "download_prices"
}

// DownloadRecord is the audit row written alongside each paid download.
type DownloadRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	MediaType MediaType `gorm:"size:10;not null" json:"media_type"`
	Coins     int64     `gorm:"not null" json:"coins"`
	CreatedAt time.Time `json:"created_at"`
}

func (DownloadRecord) TableName() string {
	return "download_records"
}
