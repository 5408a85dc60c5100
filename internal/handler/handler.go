package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Session error messages
	ErrMsgMissingSession = "Missing session"

	// Admin error messages
	ErrMsgReloadPolicyFailed = "Failed to reload wish policy"
	ErrMsgNoPolicyFile       = "No wish policy file is configured"
	ErrMsgMissingVariant     = "Missing variant"
)

// Success messages for API responses
const (
	MsgWishReset           = "Your wish has been cleared"
	MsgPolicyReloadSuccess = "Wish policy reloaded successfully"
	MsgVariantSwitched     = "Active wish variant switched"
	MsgCachePurged         = "Classifier cache purged"
)
