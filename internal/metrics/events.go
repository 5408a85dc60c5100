package metrics

import (
	"context"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/event"
	"github.com/osse101/WishEval_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all wish events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllWishTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.WishEvaluated:
		p, err := event.DecodePayload[domain.WishEvaluatedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		WishesEvaluated.WithLabelValues(p.Variant, p.Outcome).Inc()
		if p.Outcome != domain.OutcomeRejected {
			WishProbability.Observe(p.Probability)
		}

	case event.WishSupported:
		SupportClicks.Inc()

	case event.WishSharedSupport:
		SharedSupports.WithLabelValues(domain.SharedResultApplied).Inc()

	case event.WishReset:
		WishResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
