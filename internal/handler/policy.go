package handler

import (
	"net/http"

	"github.com/osse101/WishEval_Go/internal/wish"
)

// PolicyResponse describes the active variant and the alternatives
type PolicyResponse struct {
	Active   wish.Variant `json:"active"`
	Variants []string     `json:"variants"`
}

// SetVariantRequest is the body of POST /admin/policy/active
type SetVariantRequest struct {
	Variant string `json:"variant" validate:"required,max=64"`
}

// PolicyHandler exposes the wish policy
type PolicyHandler struct {
	policy *wish.Policy
	path   string
}

// NewPolicyHandler creates a policy handler. path may be empty when no policy file is used.
func NewPolicyHandler(policy *wish.Policy, path string) *PolicyHandler {
	return &PolicyHandler{policy: policy, path: path}
}

// HandleGetPolicy returns the active variant
// @Summary Active wish policy
// @Tags policy
// @Produce json
// @Success 200 {object} PolicyResponse
// @Router /api/v1/policy [get]
func (h *PolicyHandler) HandleGetPolicy(w http.ResponseWriter, r *http.Request) {
	all := h.policy.Variants()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.Name
	}
	respondJSON(w, http.StatusOK, PolicyResponse{Active: h.policy.Active(), Variants: names})
}

// HandleReload re-reads the policy file
// @Summary Reload wish policy file
// @Description Re-reads the YAML policy file. The current policy is kept if the file is invalid. (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} PolicyResponse
// @Failure 400 {object} ErrorResponse "Invalid policy file"
// @Failure 409 {object} ErrorResponse "No policy file configured"
// @Router /api/v1/admin/reload-policy [post]
func (h *PolicyHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if h.path == "" {
		respondError(w, http.StatusConflict, ErrMsgNoPolicyFile)
		return
	}
	if err := h.policy.LoadFile(h.path); err != nil {
		respondServiceError(w, r, ErrMsgReloadPolicyFailed, err)
		return
	}
	h.HandleGetPolicy(w, r)
}

// HandleSetActive switches the active variant until the next reload
// @Summary Switch wish variant
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetVariantRequest true "Variant name"
// @Success 200 {object} PolicyResponse
// @Failure 400 {object} ErrorResponse "Unknown variant"
// @Router /api/v1/admin/policy/active [post]
func (h *PolicyHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var req SetVariantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set variant"); err != nil {
		return
	}
	if err := h.policy.SetActive(req.Variant); err != nil {
		respondServiceError(w, r, "Set variant", err)
		return
	}
	h.HandleGetPolicy(w, r)
}
