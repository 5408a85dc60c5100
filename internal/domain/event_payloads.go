package domain

// WishEvaluatedPayload is published with EventTypeWishEvaluated
type WishEvaluatedPayload struct {
	SessionID   string  `json:"session_id"`
	WishID      string  `json:"wish_id"`
	Variant     string  `json:"variant"`
	Outcome     string  `json:"outcome"`
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Probability float64 `json:"probability"`
}

// WishSupportedPayload is published with EventTypeWishSupported
type WishSupportedPayload struct {
	SessionID   string  `json:"session_id"`
	WishID      string  `json:"wish_id"`
	Slot        int     `json:"slot"`
	Increment   float64 `json:"increment"`
	Probability float64 `json:"probability"`
}

// WishSharedSupportPayload is published with EventTypeWishSharedSupport
type WishSharedSupportPayload struct {
	WishID     string  `json:"wish_id"`
	Increment  float64 `json:"increment"`
	FriendLuck float64 `json:"friend_luck"`
}

// WishResetPayload is published with EventTypeWishReset
type WishResetPayload struct {
	SessionID string `json:"session_id"`
	WishID    string `json:"wish_id,omitempty"`
}
