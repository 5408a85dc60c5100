package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/WishEval_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Metadata  Metadata    `json:"metadata"`
	Timestamp int64       `json:"timestamp"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Wish event types
const (
	WishEvaluated     Type = domain.EventTypeWishEvaluated
	WishSupported     Type = domain.EventTypeWishSupported
	WishSharedSupport Type = domain.EventTypeWishSharedSupport
	WishReset         Type = domain.EventTypeWishReset
)

// AllWishTypes lists every wish event type, for subscribers that want all of them.
var AllWishTypes = []Type{WishEvaluated, WishSupported, WishSharedSupport, WishReset}

func newEvent(t Type, payload interface{}, metadata Metadata) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Metadata:  metadata,
		Timestamp: time.Now().Unix(),
	}
}

// NewWishEvaluatedEvent creates a wish.evaluated event
func NewWishEvaluatedEvent(sessionID string, w *domain.Wish, outcome string) Event {
	return newEvent(WishEvaluated, domain.WishEvaluatedPayload{
		SessionID:   sessionID,
		WishID:      w.ID,
		Variant:     w.Variant,
		Outcome:     outcome,
		Label:       w.Evaluation.Label,
		Score:       w.Evaluation.Score,
		Probability: w.Probability,
	}, map[string]interface{}{MetadataKeyWishID: w.ID})
}

// NewWishSupportedEvent creates a wish.supported event
func NewWishSupportedEvent(sessionID string, w *domain.Wish, slot int, increment float64) Event {
	return newEvent(WishSupported, domain.WishSupportedPayload{
		SessionID:   sessionID,
		WishID:      w.ID,
		Slot:        slot,
		Increment:   increment,
		Probability: w.Probability,
	}, map[string]interface{}{MetadataKeyWishID: w.ID})
}

// NewWishSharedSupportEvent creates a wish.shared_support event
func NewWishSharedSupportEvent(wishID string, increment, friendLuck float64) Event {
	return newEvent(WishSharedSupport, domain.WishSharedSupportPayload{
		WishID:     wishID,
		Increment:  increment,
		FriendLuck: friendLuck,
	}, map[string]interface{}{MetadataKeyWishID: wishID})
}

// NewWishResetEvent creates a wish.reset event
func NewWishResetEvent(sessionID, wishID string) Event {
	return newEvent(WishReset, domain.WishResetPayload{
		SessionID: sessionID,
		WishID:    wishID,
	}, map[string]interface{}{MetadataKeyWishID: wishID})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
