package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WishEval_Go/internal/handler"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/session"
)

type fakeClassifierCache struct {
	stats  sentiment.CacheStats
	purged bool
}

func (f *fakeClassifierCache) ProviderName() string            { return sentiment.ProviderStatic }
func (f *fakeClassifierCache) CacheStats() sentiment.CacheStats { return f.stats }
func (f *fakeClassifierCache) PurgeCache()                      { f.purged = true }

type fakeSessionStats struct{ stats session.Stats }

func (f fakeSessionStats) Stats() session.Stats { return f.stats }

func TestAdminCacheHandler(t *testing.T) {
	cache := &fakeClassifierCache{stats: sentiment.CacheStats{Hits: 100, Misses: 50, Size: 40}}
	sessions := fakeSessionStats{stats: session.Stats{Size: 3, Capacity: 10000, Hits: 7}}
	h := handler.NewAdminCacheHandler(cache, sessions)

	t.Run("stats", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetCacheStats(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/cache/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[handler.CacheStatsResponse](t, w)
		assert.Equal(t, sentiment.ProviderStatic, resp.Provider)
		assert.Equal(t, cache.stats, resp.Classifier)
		assert.Equal(t, sessions.stats, resp.Sessions)
	})

	t.Run("purge", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandlePurgeCache(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/purge", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, cache.purged)
	})
}
