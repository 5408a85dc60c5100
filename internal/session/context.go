package session

import (
	"context"
	"regexp"
)

type ctxKey struct{}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9:_\-]{1,128}$`)

// WithID attaches a session ID to the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the session ID set by the session middleware.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// ValidID reports whether a client-supplied session ID is acceptable.
// Server-issued IDs are UUIDs; bots use prefixed IDs like "discord:1234".
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
