package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wish input errors
	ErrMsgWishTooShort = "wish is too short"
	ErrMsgWishTooLong  = "wish is too long"

	// Wish state errors
	ErrMsgNoActiveWish     = "no active wish"
	ErrMsgWishNotAccepted  = "wish was not accepted"
	ErrMsgSlotNotFound     = "support slot not found"
	ErrMsgSlotAlreadyUsed  = "support slot already used"
	ErrMsgInvalidWishID    = "invalid wish id"
	ErrMsgSessionNotFound  = "session not found"
	ErrMsgInvalidShareLink = "invalid share link"

	// Classifier errors
	ErrMsgClassifierFailed = "classifier call failed"

	// Policy errors
	ErrMsgUnknownVariant = "unknown wish variant"
	ErrMsgInvalidPolicy  = "invalid wish policy"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrWishTooShort = errors.New(ErrMsgWishTooShort)
	ErrWishTooLong  = errors.New(ErrMsgWishTooLong)

	ErrNoActiveWish     = errors.New(ErrMsgNoActiveWish)
	ErrWishNotAccepted  = errors.New(ErrMsgWishNotAccepted)
	ErrSlotNotFound     = errors.New(ErrMsgSlotNotFound)
	ErrSlotAlreadyUsed  = errors.New(ErrMsgSlotAlreadyUsed)
	ErrInvalidWishID    = errors.New(ErrMsgInvalidWishID)
	ErrSessionNotFound  = errors.New(ErrMsgSessionNotFound)
	ErrInvalidShareLink = errors.New(ErrMsgInvalidShareLink)

	ErrClassifierFailed = errors.New(ErrMsgClassifierFailed)

	ErrUnknownVariant = errors.New(ErrMsgUnknownVariant)
	ErrInvalidPolicy  = errors.New(ErrMsgInvalidPolicy)
)
