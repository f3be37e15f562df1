package services

import (
	"context"
	"testing"

	"github.com/ganapathi9191/Social-media-sub000/internal/repository"
)

func newMessageService(t *testing.T) (*MessageService, *GraphService) {
	t.Helper()
	db := setupTestDB(t)
	graph := NewGraphService(db, repository.NewRepository(db), &captureEmitter{})
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	return NewMessageService(db, graph), graph
}

func TestSendMessageRequiresMutualFollow(t *testing.T) {
	service, graph := newMessageService(t)
	ctx := context.Background()

	if _, err := service.SendMessage(ctx, 1, 2, "hi"); err != ErrChatNotAllowed {
		t.Errorf("expected ErrChatNotAllowed with no follows, got %v", err)
	}

	mustFollow(t, graph, 1, 2)
	if _, err := service.SendMessage(ctx, 1, 2, "hi"); err != ErrChatNotAllowed {
		t.Errorf("one-way follow must not open chat, got %v", err)
	}

	mustFollow(t, graph, 2, 1)
	if _, err := service.SendMessage(ctx, 1, 2, "hi"); err != nil {
		t.Errorf("mutual follow must allow chat, got %v", err)
	}
}

func TestSendMessageToSelf(t *testing.T) {
	service, _ := newMessageService(t)
	if _, err := service.SendMessage(context.Background(), 1, 1, "talking to myself"); err != ErrSelfMessage {
		t.Errorf("expected ErrSelfMessage, got %v", err)
	}
}

func TestConversationAndMarkRead(t *testing.T) {
	service, graph := newMessageService(t)
	ctx := context.Background()
	mustFollow(t, graph, 1, 2)
	mustFollow(t, graph, 2, 1)

	if _, err := service.SendMessage(ctx, 1, 2, "first"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if _, err := service.SendMessage(ctx, 2, 1, "second"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	messages, err := service.Conversation(ctx, 1, 2, 10)
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	for _, message := range messages {
		if message.Read {
			t.Error("messages must start unread")
		}
	}

	if err := service.MarkRead(1, 2); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	messages, _ = service.Conversation(ctx, 1, 2, 10)
	for _, message := range messages {
		if message.SenderID == 2 && !message.Read {
			t.Error("messages from the other user must be read after MarkRead")
		}
		if message.SenderID == 1 && message.Read {
			t.Error("own sent messages must stay unread for the recipient")
		}
	}
}
