package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/wish"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Wish payloads carry the full text plus slots, so start buffers at 1 KiB.
var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError      = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr  = "Resource not found."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
	ErrMsgTimeoutError         = "That took too long. Please try again."

	// Wish messages
	ErrMsgNoActiveWishError     = "Make a wish first"
	ErrMsgWishNotAcceptedError  = "Only accepted wishes can be supported or shared"
	ErrMsgSlotNotFoundError     = "Support slot not found"
	ErrMsgSlotAlreadyUsedError  = "That support slot has already been used"
	ErrMsgInvalidShareLinkError = "That share link doesn't look right"

	// Policy messages
	ErrMsgUnknownVariantError = "Unknown wish variant"
	ErrMsgInvalidPolicyError  = "Wish policy is invalid"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal error text never reaches the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrWishTooShort):
		return http.StatusBadRequest, wish.MsgTooShort
	case errors.Is(err, domain.ErrWishTooLong):
		return http.StatusBadRequest, wish.MsgTooLong
	case errors.Is(err, domain.ErrInvalidWishID), errors.Is(err, domain.ErrInvalidShareLink):
		return http.StatusBadRequest, ErrMsgInvalidShareLinkError
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusBadRequest, ErrMsgSlotNotFoundError
	case errors.Is(err, domain.ErrSlotAlreadyUsed):
		return http.StatusConflict, ErrMsgSlotAlreadyUsedError
	case errors.Is(err, domain.ErrNoActiveWish):
		return http.StatusNotFound, ErrMsgNoActiveWishError
	case errors.Is(err, domain.ErrWishNotAccepted):
		return http.StatusUnprocessableEntity, ErrMsgWishNotAcceptedError
	case errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusBadRequest, ErrMsgUnknownVariantError
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, ErrMsgInvalidPolicyError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
