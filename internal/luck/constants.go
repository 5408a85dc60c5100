package luck

import "time"

const (
	// DefaultTTL is how long a wish's friend luck is remembered after the last support
	DefaultTTL = 48 * time.Hour

	// KeyPrefix namespaces tally keys
	KeyPrefix = "wish:luck:"
)
