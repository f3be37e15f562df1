package notify

import (
	"log"

	"github.com/ganapathi9191/Social-media-sub000/internal/models"

	"gorm.io/gorm"
)

// Event describes a notification to be recorded for a recipient.
type Event struct {
	RecipientID   uint
	SenderID      uint
	Type          models.NotificationType
	RelatedPostID *uint
	Message       string
}

// Emitter accepts events fire-and-forget. Emit must never block the caller
// and its failure must never fail the operation that produced the event.
type Emitter interface {
	Emit(event Event)
}

// Dispatcher persists events from a buffered channel on a background
// worker, decoupling notification writes from the request path.
type Dispatcher struct {
	db     *gorm.DB
	events chan Event
	done   chan struct{}
}

// NewDispatcher creates a dispatcher with the given channel capacity.
func NewDispatcher(db *gorm.DB, buffer int) *Dispatcher {
	return &Dispatcher{
		db:     db,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

// Start launches the background worker.
func (d *Dispatcher) Start() {
	go func() {
		defer close(d.done)
		for event := range d.events {
			notification := models.Notification{
				RecipientID:   event.RecipientID,
				SenderID:      event.SenderID,
				Type:          event.Type,
				RelatedPostID: event.RelatedPostID,
				Message:       event.Message,
			}
			if err := d.db.Create(&notification).Error; err != nil {
				log.Printf("Failed to record notification for user %d: %v", event.RecipientID, err)
			}
		}
	}()
}

// Emit queues an event without blocking. Events are dropped with a log line
// when the buffer is full.
func (d *Dispatcher) Emit(event Event) {
	select {
	case d.events <- event:
	default:
		log.Printf("Notification buffer full, dropping %s event for user %d", event.Type, event.RecipientID)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	close(d.events)
	<-d.done
}

// Discard is an Emitter that drops every event. Useful in tests.
type Discard struct{}

func (Discard) Emit(Event) {}
