package bootstrap

import (
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus the wish service
// publishes to. Handlers run synchronously; none of them can fail a request.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "bus", "memory")
	return eventBus
}
