package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the events wish owners can watch
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.WishSharedSupport, s.handleSharedSupport)
	s.bus.Subscribe(event.WishSupported, s.handleSupported)

	slog.Info("SSE subscriber registered for event types",
		"types", []string{string(event.WishSharedSupport), string(event.WishSupported)})
}

func (s *Subscriber) handleSharedSupport(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.WishSharedSupportPayload](evt.Payload)
	if err != nil {
		slog.Warn("Invalid shared support event payload", "error", err)
		return nil
	}

	if !s.hub.Broadcast(EventTypeSharedSupport, payload.WishID, SharedSupportPayload{
		WishID:     payload.WishID,
		Increment:  payload.Increment,
		FriendLuck: payload.FriendLuck,
	}) {
		slog.Warn(LogMsgBroadcastDropped, "event_type", EventTypeSharedSupport, "wish_id", payload.WishID)
		return nil
	}

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSharedSupport,
		"wish_id", payload.WishID,
		"friend_luck", payload.FriendLuck)
	return nil
}

func (s *Subscriber) handleSupported(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.WishSupportedPayload](evt.Payload)
	if err != nil {
		slog.Warn("Invalid supported event payload", "error", err)
		return nil
	}

	if !s.hub.Broadcast(EventTypeSupported, payload.WishID, SupportedPayload{
		WishID:      payload.WishID,
		Slot:        payload.Slot,
		Increment:   payload.Increment,
		Probability: payload.Probability,
	}) {
		slog.Warn(LogMsgBroadcastDropped, "event_type", EventTypeSupported, "wish_id", payload.WishID)
	}
	return nil
}

// SharedSupportPayload is streamed to the wish owner when a friend adds luck
type SharedSupportPayload struct {
	WishID     string  `json:"wish_id"`
	Increment  float64 `json:"increment"`
	FriendLuck float64 `json:"friend_luck"`
}

// SupportedPayload is streamed when the owner uses a slot in another tab or client
type SupportedPayload struct {
	WishID      string  `json:"wish_id"`
	Slot        int     `json:"slot"`
	Increment   float64 `json:"increment"`
	Probability float64 `json:"probability"`
}
