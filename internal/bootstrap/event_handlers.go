package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/event"
	"github.com/osse101/WishEval_Go/internal/metrics"
	"github.com/osse101/WishEval_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (event-based counters)
// - SSE subscriber (pushes friend luck to the wish owner's stream)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
