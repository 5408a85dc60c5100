package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WishEval_Go/internal/wish"
)

// SupportSharedRequest is the body of POST /shared/support
type SupportSharedRequest struct {
	WishID string `json:"wish_id" validate:"required,wishid"`
	Wish   string `json:"wish" validate:"max=512"`
}

// LuckResponse reports the luck friends have sent to a wish
type LuckResponse struct {
	WishID     string  `json:"wish_id"`
	FriendLuck float64 `json:"friend_luck"`
}

// SharedHandler serves the friend-side endpoints reached through share links
type SharedHandler struct {
	svc wish.Service
}

// NewSharedHandler creates a new shared wish handler
func NewSharedHandler(svc wish.Service) *SharedHandler {
	return &SharedHandler{svc: svc}
}

// HandleView shows a friend's wish and the increment this visitor would add
// @Summary View a shared wish
// @Tags shared
// @Produce json
// @Param wish_id query string true "Wish ID"
// @Param wish query string false "Wish text prefix"
// @Success 200 {object} domain.SharedWish
// @Failure 400 {object} ErrorResponse "Invalid share link"
// @Router /api/v1/shared [get]
func (h *SharedHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	wishID, ok := GetQueryParam(r, w, wish.ParamWishID)
	if !ok {
		return
	}
	text := GetOptionalQueryParam(r, wish.ParamWish, "")

	view, err := h.svc.ViewShared(r.Context(), sessionID, wishID, text)
	if err != nil {
		respondServiceError(w, r, "View shared wish", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleSupport adds this visitor's luck to a friend's wish, once per session
// @Summary Support a shared wish
// @Tags shared
// @Accept json
// @Produce json
// @Param request body SupportSharedRequest true "Shared wish"
// @Success 200 {object} domain.SharedSupportResult
// @Failure 400 {object} ErrorResponse "Invalid share link"
// @Router /api/v1/shared/support [post]
func (h *SharedHandler) HandleSupport(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req SupportSharedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Support shared wish"); err != nil {
		return
	}

	result, err := h.svc.SupportShared(r.Context(), sessionID, req.WishID, req.Wish)
	if err != nil {
		respondServiceError(w, r, "Support shared wish", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleFriendLuck returns the luck total for a wish
// @Summary Friend luck total
// @Tags shared
// @Produce json
// @Param wishID path string true "Wish ID"
// @Success 200 {object} LuckResponse
// @Failure 400 {object} ErrorResponse "Invalid wish ID"
// @Router /api/v1/luck/{wishID} [get]
func (h *SharedHandler) HandleFriendLuck(w http.ResponseWriter, r *http.Request) {
	wishID := chi.URLParam(r, "wishID")

	total, err := h.svc.FriendLuck(r.Context(), wishID)
	if err != nil {
		respondServiceError(w, r, "Get friend luck", err)
		return
	}

	respondJSON(w, http.StatusOK, LuckResponse{WishID: wishID, FriendLuck: total})
}
