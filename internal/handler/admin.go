package handler

import (
	"net/http"

	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/session"
)

// ClassifierCache is the part of the classifier pipeline the admin endpoints use
type ClassifierCache interface {
	ProviderName() string
	CacheStats() sentiment.CacheStats
	PurgeCache()
}

// SessionStatser reports session store usage
type SessionStatser interface {
	Stats() session.Stats
}

// CacheStatsResponse combines classifier cache and session store statistics
type CacheStatsResponse struct {
	Provider   string               `json:"provider"`
	Classifier sentiment.CacheStats `json:"classifier_cache"`
	Sessions   session.Stats        `json:"sessions"`
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	classifier ClassifierCache
	sessions   SessionStatser
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(classifier ClassifierCache, sessions SessionStatser) *AdminCacheHandler {
	return &AdminCacheHandler{classifier: classifier, sessions: sessions}
}

// HandleGetCacheStats returns classifier cache and session statistics
// @Summary Get cache stats
// @Description Returns classifier cache hits/misses and session store usage (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} CacheStatsResponse
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CacheStatsResponse{
		Provider:   h.classifier.ProviderName(),
		Classifier: h.classifier.CacheStats(),
		Sessions:   h.sessions.Stats(),
	})
}

// HandlePurgeCache drops every cached classifier verdict
// @Summary Purge classifier cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/purge [post]
func (h *AdminCacheHandler) HandlePurgeCache(w http.ResponseWriter, r *http.Request) {
	h.classifier.PurgeCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCachePurged})
}
