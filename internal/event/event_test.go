package event

import (
	"context"
	"errors"
	"testing"

	"github.com/osse101/WishEval_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), NewWishResetEvent("s1", "abcdef0123")); err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestWishEventConstructors(t *testing.T) {
	w := &domain.Wish{
		ID:          "abcdef0123",
		Variant:     "classic",
		Probability: 75,
		Evaluation:  domain.Evaluation{Label: domain.LabelPositive, Score: 0.9},
	}

	evt := NewWishEvaluatedEvent("s1", w, domain.OutcomeAccepted)
	if evt.Type != WishEvaluated || evt.Version != EventSchemaVersion {
		t.Fatalf("unexpected event header: %+v", evt)
	}
	payload, err := DecodePayload[domain.WishEvaluatedPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if payload.Probability != 75 || payload.Outcome != domain.OutcomeAccepted {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if evt.GetMetadataValue(MetadataKeyWishID) != "abcdef0123" {
		t.Errorf("expected wish_id metadata, got %v", evt.GetMetadataValue(MetadataKeyWishID))
	}

	shared := NewWishSharedSupportEvent("abcdef0123", 4.2, 9.1)
	sp, err := DecodePayload[domain.WishSharedSupportPayload](shared.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if sp.FriendLuck != 9.1 {
		t.Errorf("expected friend luck 9.1, got %v", sp.FriendLuck)
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"wish_id": "abcdef0123", "increment": 2.5, "friend_luck": 2.5}
	p, err := DecodePayload[domain.WishSharedSupportPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.WishID != "abcdef0123" || p.Increment != 2.5 {
		t.Errorf("unexpected payload: %+v", p)
	}
}
