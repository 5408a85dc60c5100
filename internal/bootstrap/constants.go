package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingWishEval    = "Starting WishEval"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// =============================================================================
// Component Wiring
// =============================================================================

const (
	// ComponentStartupTimeout bounds provider construction and the redis ping
	ComponentStartupTimeout = 30 * time.Second

	// Readiness check names reported by /readyz
	CheckNameClassifier = "classifier"
	CheckNameLuckTally  = "luck_tally"
)

const (
	LogMsgClassifierReady       = "Classifier pipeline ready"
	LogMsgPolicyLoaded          = "Wish policy loaded"
	LogMsgPolicyWatching        = "Watching wish policy file for changes"
	LogMsgLuckTallyRedis        = "Friend luck tally backed by redis"
	LogMsgLuckTallyMemory       = "Friend luck tally kept in memory"
	LogMsgUsageSamplerScheduled = "Usage sampler scheduled"
	ErrMsgFailedInitClassifier  = "failed to initialize classifier"
	ErrMsgFailedInitPolicy      = "failed to initialize wish policy"
	ErrMsgFailedLoadPolicyFile  = "failed to load wish policy file"
	ErrMsgFailedInitLuckTally   = "failed to initialize luck tally"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingSSEHub       = "Stopping SSE hub..."
	LogMsgStoppingWorkers      = "Stopping background workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgTracerShutdownFailed = "Tracer shutdown failed"
	LogMsgLogFileCloseFailed   = "Log file close failed"

	// Component names for shutdown logging
	ComponentNameClassifier = "classifier"
	ComponentNameLuckTally  = "luck tally"
)

// Shutdown log message format (component name will be prepended)
const (
	LogMsgComponentCloseFailed = " close failed"
)
