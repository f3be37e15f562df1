package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"
)

// MessageService persists direct messages. Sending requires a mutual
// follow; delivery over sockets is a separate collaborator reading these
// rows.
type MessageService struct {
	db    *gorm.DB
	graph *GraphService
}

// NewMessageService creates a new MessageService
func NewMessageService(db *gorm.DB, graph *GraphService) *MessageService {
	return &MessageService{db: db, graph: graph}
}

// SendMessage stores a direct message after the mutual-follow gate.
func (s *MessageService) SendMessage(ctx context.Context, senderID, recipientID uint, body string) (*models.Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}

	allowed, err := s.graph.CanChat(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrChatNotAllowed
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return &message, nil
}

// Conversation returns the message history between two users, newest
// first.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID uint, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var messages []models.Message
	err := s.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// MarkRead marks every message from otherID to userID as read.
func (s *MessageService) MarkRead(userID, otherID uint) error {
	return s.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read = ?", otherID, userID, false).
		Update("read", true).Error
}
