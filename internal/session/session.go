package session

import (
	"time"

	"github.com/osse101/WishEval_Go/internal/domain"
)

// Session holds everything one visitor has done: their own wish, the support
// offers they were shown for friends' wishes, and the friends' wishes they
// already supported.
type Session struct {
	ID        string
	Wish      *domain.Wish
	Offers    map[string]float64
	Supported map[string]float64
	UpdatedAt time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		Offers:    make(map[string]float64),
		Supported: make(map[string]float64),
		UpdatedAt: time.Now(),
	}
}

// Clone returns a deep copy so callers can mutate without touching the stored value.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := &Session{
		ID:        s.ID,
		Wish:      s.Wish.Clone(),
		Offers:    make(map[string]float64, len(s.Offers)),
		Supported: make(map[string]float64, len(s.Supported)),
		UpdatedAt: s.UpdatedAt,
	}
	for k, v := range s.Offers {
		out.Offers[k] = v
	}
	for k, v := range s.Supported {
		out.Supported[k] = v
	}
	return out
}

// HasSupported reports whether this session already sent luck to wishID.
func (s *Session) HasSupported(wishID string) bool {
	_, ok := s.Supported[wishID]
	return ok
}
