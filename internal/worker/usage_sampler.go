package worker

import (
	"context"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/metrics"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/session"
)

// SessionStatser reports session store usage.
type SessionStatser interface {
	Stats() session.Stats
}

// CacheStatser reports classifier cache usage.
type CacheStatser interface {
	CacheStats() sentiment.CacheStats
}

// UsageSampler copies store sizes into gauges so they can be scraped between
// requests. Either source may be nil.
type UsageSampler struct {
	Sessions   SessionStatser
	Classifier CacheStatser
}

func (u *UsageSampler) Name() string { return JobNameUsageSampler }

func (u *UsageSampler) Process(ctx context.Context) error {
	attrs := make([]any, 0, 4)
	if u.Sessions != nil {
		st := u.Sessions.Stats()
		metrics.SessionsActive.Set(float64(st.Size))
		attrs = append(attrs, "sessions", st.Size)
	}
	if u.Classifier != nil {
		cs := u.Classifier.CacheStats()
		metrics.ClassifierCacheEntries.Set(float64(cs.Size))
		attrs = append(attrs, "classifier_cache", cs.Size)
	}
	logger.FromContext(ctx).Log(ctx, slog.LevelDebug, LogMsgUsageSampled, attrs...)
	return nil
}
