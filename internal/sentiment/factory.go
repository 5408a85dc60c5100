package sentiment

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Config selects and configures the classifier provider.
type Config struct {
	Provider string
	Timeout  time.Duration

	HuggingFace HuggingFaceConfig
	ONNX        ONNXConfig

	GeminiAPIKey string
	GeminiModel  string

	StaticLabel string
	StaticScore float64

	CacheSize int
	CacheTTL  time.Duration
}

// Pipeline is the classifier used by the wish service: normalization, then
// the result cache, then instrumentation around the provider.
type Pipeline struct {
	Classifier
	provider Classifier
	cache    *Cached
}

// New builds the provider named by cfg.Provider and wraps it.
func New(ctx context.Context, cfg Config) (*Pipeline, error) {
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(provider, cfg), nil
}

// Wrap decorates an existing provider. Used by New and by tests with fakes.
func Wrap(provider Classifier, cfg Config) *Pipeline {
	cache := NewCached(NewInstrumented(provider, cfg.Timeout), cfg.CacheSize, cfg.CacheTTL)
	return &Pipeline{
		Classifier: WithNormalization(cache),
		provider:   provider,
		cache:      cache,
	}
}

func newProvider(ctx context.Context, cfg Config) (Classifier, error) {
	switch cfg.Provider {
	case ProviderHuggingFace, "":
		hf := cfg.HuggingFace
		if hf.Timeout <= 0 {
			hf.Timeout = cfg.Timeout
		}
		return NewHuggingFace(hf), nil
	case ProviderONNX:
		return NewONNX(cfg.ONNX)
	case ProviderGemini:
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case ProviderStatic:
		return NewStatic(cfg.StaticLabel, cfg.StaticScore), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider %q", cfg.Provider)
	}
}

// ProviderName returns the underlying provider name.
func (p *Pipeline) ProviderName() string { return p.provider.Name() }

// CacheStats returns result cache counters.
func (p *Pipeline) CacheStats() CacheStats { return p.cache.Stats() }

// PurgeCache drops every cached verdict.
func (p *Pipeline) PurgeCache() { p.cache.Purge() }

// CheckHealth delegates to the provider when it supports health checks.
func (p *Pipeline) CheckHealth(ctx context.Context) error {
	if hc, ok := p.provider.(HealthChecker); ok {
		return hc.CheckHealth(ctx)
	}
	return nil
}

// Close releases provider resources, if any.
func (p *Pipeline) Close() error {
	if c, ok := p.provider.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
