package domain

import (
	"regexp"
	"time"
)

// Evaluation is the classifier verdict for a wish after the active policy has been applied
type Evaluation struct {
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Accepted    bool    `json:"accepted"`
	Fallback    bool    `json:"fallback"`
	Overridden  bool    `json:"overridden,omitempty"`
	Message     string  `json:"message"`
	ErrorDetail string  `json:"error_detail,omitempty"`
}

// SupportSlot is a pre-rolled increment that can be consumed once
type SupportSlot struct {
	Index     int     `json:"index"`
	Increment float64 `json:"increment"`
	Used      bool    `json:"used"`
}

// Wish is the evaluated wish owned by a session
type Wish struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Variant     string        `json:"variant"`
	Probability float64       `json:"probability"`
	Celebrate   bool          `json:"celebrate"`
	Evaluation  Evaluation    `json:"evaluation"`
	Slots       []SupportSlot `json:"slots"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Clone returns a deep copy so callers never share slot slices with session state
func (w *Wish) Clone() *Wish {
	if w == nil {
		return nil
	}
	out := *w
	out.Slots = make([]SupportSlot, len(w.Slots))
	copy(out.Slots, w.Slots)
	return &out
}

// RemainingSlots counts the slots that have not been used yet
func (w *Wish) RemainingSlots() int {
	n := 0
	for _, s := range w.Slots {
		if !s.Used {
			n++
		}
	}
	return n
}

// ShareLink is the invitation URL for friends
type ShareLink struct {
	URL        string `json:"url"`
	WishID     string `json:"wish_id"`
	WishPrefix string `json:"wish_prefix"`
}

// SharedWish is what a friend sees when opening a share link
type SharedWish struct {
	ID               string  `json:"wish_id"`
	Text             string  `json:"wish"`
	Offer            float64 `json:"offer"`
	AlreadySupported bool    `json:"already_supported"`
	FriendLuck       float64 `json:"friend_luck"`
	Message          string  `json:"message"`
}

// SharedSupportResult is the outcome of a friend pressing the support button
type SharedSupportResult struct {
	WishID           string  `json:"wish_id"`
	Increment        float64 `json:"increment"`
	AlreadySupported bool    `json:"already_supported"`
	FriendLuck       float64 `json:"friend_luck"`
	Message          string  `json:"message"`
}

var wishIDPattern = regexp.MustCompile(`^[0-9a-f]{10}$`)

// IsValidWishID reports whether id looks like a wish identifier (10 lowercase hex chars)
func IsValidWishID(id string) bool {
	return wishIDPattern.MatchString(id)
}
