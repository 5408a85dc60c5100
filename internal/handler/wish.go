package handler

import (
	"net/http"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/wish"
)

// EvaluateWishRequest is the body of POST /wish/evaluate.
// Length rules are enforced by the service so the user gets the friendly warning.
type EvaluateWishRequest struct {
	Wish string `json:"wish" validate:"max=16000"`
}

// SupportWishRequest is the body of POST /wish/support
type SupportWishRequest struct {
	Slot *int `json:"slot" validate:"required,min=0,max=19"`
}

// WishResponse wraps the session's wish with the message to show
type WishResponse struct {
	Wish           *domain.Wish `json:"wish"`
	Message        string       `json:"message"`
	Celebration    string       `json:"celebration,omitempty"`
	RemainingSlots int          `json:"remaining_slots"`
}

// ShareLinkResponse is returned by GET /wish/share
type ShareLinkResponse struct {
	domain.ShareLink
	Message string `json:"message"`
}

// WishHandler serves the owner-side wish endpoints
type WishHandler struct {
	svc wish.Service
}

// NewWishHandler creates a new wish handler
func NewWishHandler(svc wish.Service) *WishHandler {
	return &WishHandler{svc: svc}
}

func newWishResponse(w *domain.Wish) WishResponse {
	resp := WishResponse{
		Wish:           w,
		Message:        w.Evaluation.Message,
		RemainingSlots: w.RemainingSlots(),
	}
	if w.Celebrate {
		resp.Celebration = wish.MsgCelebrate
	}
	return resp
}

// HandleEvaluate classifies a new wish and makes it the session's current wish
// @Summary Evaluate a wish
// @Description Classifies the wish, scores it under the active variant and stores it in the session
// @Tags wish
// @Accept json
// @Produce json
// @Param request body EvaluateWishRequest true "Wish text"
// @Success 200 {object} WishResponse
// @Failure 400 {object} ErrorResponse "Wish too short or too long"
// @Router /api/v1/wish/evaluate [post]
func (h *WishHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req EvaluateWishRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate wish"); err != nil {
		return
	}

	result, err := h.svc.Evaluate(r.Context(), sessionID, req.Wish)
	if err != nil {
		respondServiceError(w, r, "Evaluate wish", err)
		return
	}

	respondJSON(w, http.StatusOK, newWishResponse(result))
}

// HandleCurrent returns the session's current wish
// @Summary Current wish
// @Tags wish
// @Produce json
// @Success 200 {object} WishResponse
// @Failure 404 {object} ErrorResponse "No active wish"
// @Router /api/v1/wish [get]
func (h *WishHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Current(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, "Get wish", err)
		return
	}

	respondJSON(w, http.StatusOK, newWishResponse(result))
}

// HandleSupport consumes one of the owner's support slots
// @Summary Use a support slot
// @Description Adds the slot's pre-rolled increment to the wish probability. Each slot works once.
// @Tags wish
// @Accept json
// @Produce json
// @Param request body SupportWishRequest true "Slot index"
// @Success 200 {object} WishResponse
// @Failure 404 {object} ErrorResponse "No active wish"
// @Failure 409 {object} ErrorResponse "Slot already used"
// @Failure 422 {object} ErrorResponse "Wish not accepted"
// @Router /api/v1/wish/support [post]
func (h *WishHandler) HandleSupport(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req SupportWishRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Support wish"); err != nil {
		return
	}

	result, err := h.svc.Support(r.Context(), sessionID, *req.Slot)
	if err != nil {
		respondServiceError(w, r, "Support wish", err)
		return
	}

	respondJSON(w, http.StatusOK, newWishResponse(result))
}

// HandleReset clears the session's wish and support history
// @Summary Reset the session
// @Tags wish
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/wish/reset [post]
func (h *WishHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, "Reset wish", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWishReset})
}

// HandleShare returns the invitation link for the session's accepted wish
// @Summary Share link
// @Tags wish
// @Produce json
// @Success 200 {object} ShareLinkResponse
// @Failure 404 {object} ErrorResponse "No active wish"
// @Failure 422 {object} ErrorResponse "Wish not accepted"
// @Router /api/v1/wish/share [get]
func (h *WishHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	link, err := h.svc.ShareLink(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, "Share wish", err)
		return
	}

	logger.FromContext(r.Context()).Info("Share link created", "wish_id", link.WishID)
	respondJSON(w, http.StatusOK, ShareLinkResponse{ShareLink: link, Message: wish.MsgSharedInvite})
}
