package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "wish.supported")
const (
	// EventTypeWishEvaluated is published after a wish has been classified and scored
	EventTypeWishEvaluated = "wish.evaluated"

	// EventTypeWishSupported is published when the owner consumes one of their support slots
	EventTypeWishSupported = "wish.supported"

	// EventTypeWishSharedSupport is published when a friend adds luck through a share link
	EventTypeWishSharedSupport = "wish.shared_support"

	// EventTypeWishReset is published when a session clears its wish
	EventTypeWishReset = "wish.reset"
)
