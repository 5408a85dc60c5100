package session

import "time"

const (
	DefaultCapacity = 10000
	DefaultTTL      = 24 * time.Hour

	// CookieName is the browser cookie carrying the session ID.
	CookieName = "wish_session"
	// HeaderName lets API clients pass the session ID explicitly.
	HeaderName = "X-Session-ID"
)
