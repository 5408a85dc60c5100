package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/event"
)

func TestEventMetricsCollector_WishEvaluated(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	counter := WishesEvaluated.WithLabelValues("classic", domain.OutcomeAccepted)
	before := testutil.ToFloat64(counter)

	w := &domain.Wish{ID: "abcdef0123", Variant: "classic", Probability: 75}
	require.NoError(t, bus.Publish(context.Background(), event.NewWishEvaluatedEvent("s1", w, domain.OutcomeAccepted)))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestEventMetricsCollector_SupportAndShared(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	clicks := testutil.ToFloat64(SupportClicks)
	shared := testutil.ToFloat64(SharedSupports.WithLabelValues(domain.SharedResultApplied))
	resets := testutil.ToFloat64(WishResets)

	w := &domain.Wish{ID: "abcdef0123", Probability: 80}
	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewWishSupportedEvent("s1", w, 0, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewWishSharedSupportEvent("abcdef0123", 2, 2)))
	require.NoError(t, bus.Publish(ctx, event.NewWishResetEvent("s1", "abcdef0123")))

	assert.Equal(t, clicks+1, testutil.ToFloat64(SupportClicks))
	assert.Equal(t, shared+1, testutil.ToFloat64(SharedSupports.WithLabelValues(domain.SharedResultApplied)))
	assert.Equal(t, resets+1, testutil.ToFloat64(WishResets))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/luck/{wishID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/luck/{wishID}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/luck/abcdef0123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	var _ http.Flusher = rw
	rw.Flush()
	assert.True(t, rec.Flushed)
}
