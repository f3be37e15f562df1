package models

import (
	"time"
)

type NotificationType string

const (
	NotifyFollowRequest  NotificationType = "follow_request"
	NotifyFollowApproved NotificationType = "follow_approved"
	NotifyLike           NotificationType = "like"
	NotifyComment        NotificationType = "comment"
	NotifyMention        NotificationType = "mention"
	NotifyPost           NotificationType = "post"
	NotifyGroupInvite    NotificationType = "group_invite"
	NotifyTransfer       NotificationType = "transfer"
)

// Notification is a persisted event for a recipient. Rows are written by
// the dispatcher worker, never inline with the operation that caused them.
type Notification struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	RecipientID   uint             `gorm:"not null;index" json:"recipient_id"`
	SenderID      uint             `gorm:"not null" json:"sender_id"`
	Sender        *User            `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Type          NotificationType `gorm:"size:30;not null;index" json:"type"`
	RelatedPostID *uint            `gorm:"index" json:"related_post_id,omitempty"`
	Message       string           `gorm:"size:255" json:"message"`
	Read          bool             `gorm:"default:false;index" json:"read"`
	CreatedAt     time.Time        `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
