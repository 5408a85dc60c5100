package sentiment

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/metrics"
)

// Instrumented traces and times every call and wraps failures in
// domain.ErrClassifierFailed.
type Instrumented struct {
	next    Classifier
	tracer  trace.Tracer
	timeout time.Duration
}

// NewInstrumented wraps next. A positive timeout bounds each call.
func NewInstrumented(next Classifier, timeout time.Duration) *Instrumented {
	return &Instrumented{
		next:    next,
		tracer:  otel.Tracer(tracerName),
		timeout: timeout,
	}
}

func (i *Instrumented) Name() string { return i.next.Name() }

func (i *Instrumented) Classify(ctx context.Context, text string) (Result, error) {
	provider := i.next.Name()
	ctx, span := i.tracer.Start(ctx, "sentiment.Classify", trace.WithAttributes(
		attribute.String("classifier.provider", provider),
		attribute.Int("wish.runes", utf8.RuneCountInString(text)),
	))
	defer span.End()

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	start := time.Now()
	r, err := i.next.Classify(ctx, text)
	metrics.ClassifierDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ClassifierRequestsTotal.WithLabelValues(provider, metrics.ResultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("%w: %s: %v", domain.ErrClassifierFailed, provider, err)
	}

	metrics.ClassifierRequestsTotal.WithLabelValues(provider, metrics.ResultSuccess).Inc()
	span.SetAttributes(
		attribute.String("classifier.label", r.Label),
		attribute.Float64("classifier.score", r.Score),
	)
	return r, nil
}
