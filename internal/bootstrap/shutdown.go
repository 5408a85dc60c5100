package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/scheduler"
	"github.com/osse101/WishEval_Go/internal/server"
	"github.com/osse101/WishEval_Go/internal/sse"
	"github.com/osse101/WishEval_Go/internal/tracer"
	"github.com/osse101/WishEval_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	Hub            *sse.Hub
	Scheduler      *scheduler.Scheduler
	Workers        *worker.Pool
	Classifier     io.Closer
	Tally          any // closed when it implements io.Closer
	TracerShutdown tracer.ShutdownFunc
	LogFile        io.Closer
}

// NewShutdownComponents collects the closable parts of c.
func NewShutdownComponents(c *Components, logFile io.Closer) ShutdownComponents {
	return ShutdownComponents{
		Server:         c.Server,
		Hub:            c.Hub,
		Scheduler:      c.Scheduler,
		Workers:        c.Workers,
		Classifier:     c.Classifier,
		Tally:          c.Tally,
		TracerShutdown: c.TracerShutdown,
		LogFile:        logFile,
	}
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. SSE hub (end open event streams so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler and worker pool
// 4. Classifier and luck tally (release model sessions and connections)
// 5. Tracer (flush pending spans)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgStoppingSSEHub)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Workers != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.Workers.Stop()
	}

	closeComponent(ComponentNameClassifier, components.Classifier)
	closeComponent(ComponentNameLuckTally, components.Tally)

	if components.TracerShutdown != nil {
		if err := components.TracerShutdown(ctx); err != nil {
			slog.Error(LogMsgTracerShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
