package wish_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/osse101/WishEval_Go/internal/event"
	"github.com/osse101/WishEval_Go/internal/luck"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/session"
	"github.com/osse101/WishEval_Go/internal/wish"
)

// --- Stubs (zero-overhead collaborators for benchmarking) ---

type StubBus struct{}

func (StubBus) Publish(ctx context.Context, evt event.Event) error { return nil }
func (StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func newService(b *testing.B) wish.Service {
	b.Helper()
	policy, err := wish.NewPolicy(wish.VariantClassic)
	if err != nil {
		b.Fatal(err)
	}
	classifier := sentiment.Wrap(sentiment.NewStatic("POSITIVE", 0.9), sentiment.Config{
		Timeout:   time.Second,
		CacheSize: 1024,
		CacheTTL:  time.Hour,
	})
	sessions := session.NewStore(session.Config{Capacity: 100000, TTL: time.Hour})
	return wish.NewService(classifier, policy, sessions, luck.NewMemoryTally(time.Hour), StubBus{},
		wish.Config{BaseURL: "http://localhost:8080/"},
		wish.WithIncrementRoller(func() float64 { return 2.5 }))
}

// BenchmarkEvaluate measures a full evaluation through the cached classifier pipeline.
func BenchmarkEvaluate(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Evaluate(ctx, fmt.Sprintf("session-%d", i%1000), "I wish to adopt a rescue dog in 2026"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluate_Parallel exercises per-session locking under contention.
func BenchmarkEvaluate_Parallel(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if _, err := svc.Evaluate(ctx, fmt.Sprintf("session-%d", i%64), "I wish for a quiet weekend by the sea"); err != nil {
				b.Error(err)
				return
			}
			i++
		}
	})
}

// BenchmarkSupportShared measures the friend path: one support per visiting session.
func BenchmarkSupportShared(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()

	owner, err := svc.Evaluate(ctx, "owner", "I wish to adopt a rescue dog in 2026")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SupportShared(ctx, fmt.Sprintf("friend-%d", i), owner.ID, owner.Text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNormalizeText measures the classifier input normalization.
func BenchmarkNormalizeText(b *testing.B) {
	text := "  Ich wünsche mir   einen ruhigen Sommer am Meer!  "
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sentiment.NormalizeText(text)
	}
}
