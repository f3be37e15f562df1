package models

import (
	"time"
)

// Message is one direct message between two mutual followers. Real-time
// delivery happens outside this service; rows here are the durable record.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"not null;index:idx_msg_pair" json:"sender_id"`
	Sender      *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientID uint      `gorm:"not null;index:idx_msg_pair" json:"recipient_id"`
	Recipient   *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Body        string    `gorm:"size:2000;not null" json:"body"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
