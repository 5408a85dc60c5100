package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/config"
	"github.com/osse101/WishEval_Go/internal/event"
	"github.com/osse101/WishEval_Go/internal/handler"
	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/luck"
	"github.com/osse101/WishEval_Go/internal/scheduler"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/server"
	"github.com/osse101/WishEval_Go/internal/session"
	"github.com/osse101/WishEval_Go/internal/sse"
	"github.com/osse101/WishEval_Go/internal/tracer"
	"github.com/osse101/WishEval_Go/internal/wish"
	"github.com/osse101/WishEval_Go/internal/worker"
)

// Components is everything main needs to run and later shut down.
type Components struct {
	EventBus       event.Bus
	Classifier     *sentiment.Pipeline
	Policy         *wish.Policy
	PolicyWatcher  *wish.PolicyWatcher // nil without WISH_POLICY_FILE
	Sessions       *session.Store
	Tally          luck.Tally
	Hub            *sse.Hub
	WishService    wish.Service
	Server         *server.Server
	Workers        *worker.Pool
	Scheduler      *scheduler.Scheduler
	TracerShutdown tracer.ShutdownFunc
}

// InitializeComponents builds the classifier pipeline, the policy, the stores
// and the wish service, then wires them into the HTTP server.
func InitializeComponents(ctx context.Context, cfg *config.Config) (*Components, error) {
	startCtx, cancel := context.WithTimeout(ctx, ComponentStartupTimeout)
	defer cancel()

	shutdownTracer := tracer.Init(startCtx, tracer.Config{
		Enabled:     cfg.OTELEnabled,
		Endpoint:    cfg.OTELEndpoint,
		ServiceName: logger.DefaultServiceName,
		Version:     cfg.Version,
		Insecure:    cfg.OTELInsecure,
		SampleRatio: cfg.OTELSampleRatio,
	})

	classifier, err := sentiment.New(startCtx, ClassifierConfig(cfg))
	if err != nil {
		_ = shutdownTracer(ctx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitClassifier, err)
	}
	slog.Info(LogMsgClassifierReady, "provider", classifier.ProviderName(),
		"cache_size", cfg.ClassifierCacheSize, "cache_ttl", cfg.ClassifierCacheTTL)

	policy, watcher, err := initializePolicy(cfg)
	if err != nil {
		_ = classifier.Close()
		_ = shutdownTracer(ctx)
		return nil, err
	}

	tally, err := initializeLuckTally(startCtx, cfg)
	if err != nil {
		_ = classifier.Close()
		_ = shutdownTracer(ctx)
		return nil, err
	}

	sessions := session.NewStore(session.Config{
		Capacity: cfg.SessionCapacity,
		TTL:      cfg.SessionTTL,
	})

	eventBus := InitializeEventSystem()
	hub := sse.NewHub()
	if err := RegisterEventHandlers(EventHandlerDependencies{EventBus: eventBus, Hub: hub}); err != nil {
		closeComponent(ComponentNameLuckTally, tally)
		_ = classifier.Close()
		_ = shutdownTracer(ctx)
		return nil, err
	}
	hub.Start()

	wishService := wish.NewService(classifier, policy, sessions, tally, eventBus, wish.Config{
		BaseURL: cfg.BaseURL,
	})

	checkers := map[string]handler.HealthChecker{
		CheckNameClassifier: classifier,
	}
	if hc, ok := tally.(handler.HealthChecker); ok {
		checkers[CheckNameLuckTally] = hc
	}

	srv := server.NewServer(ServerConfig(cfg), server.Deps{
		WishService:    wishService,
		Policy:         policy,
		PolicyFile:     cfg.WishPolicyFile,
		Classifier:     classifier,
		Sessions:       sessions,
		Hub:            hub,
		HealthCheckers: checkers,
	})

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	if cfg.UsageSampleInterval > 0 {
		sched.Schedule(cfg.UsageSampleInterval, &worker.UsageSampler{
			Sessions:   sessions,
			Classifier: classifier,
		})
		slog.Info(LogMsgUsageSamplerScheduled, "interval", cfg.UsageSampleInterval)
	}

	return &Components{
		EventBus:       eventBus,
		Classifier:     classifier,
		Policy:         policy,
		PolicyWatcher:  watcher,
		Sessions:       sessions,
		Tally:          tally,
		Hub:            hub,
		WishService:    wishService,
		Server:         srv,
		Workers:        pool,
		Scheduler:      sched,
		TracerShutdown: shutdownTracer,
	}, nil
}

// ServerConfig maps application settings onto the HTTP server.
func ServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		MaxBodyBytes:      cfg.MaxBodyBytes,
		SessionTTL:        cfg.SessionTTL,
		SecureCookies:     cfg.SessionCookieSecure,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// ClassifierConfig maps application settings onto the sentiment pipeline.
func ClassifierConfig(cfg *config.Config) sentiment.Config {
	return sentiment.Config{
		Provider: cfg.ClassifierProvider,
		Timeout:  cfg.ClassifierTimeout,
		HuggingFace: sentiment.HuggingFaceConfig{
			APIKey:  cfg.HFAPIToken,
			BaseURL: cfg.HFBaseURL,
			Model:   cfg.HFModel,
			Timeout: cfg.ClassifierTimeout,
		},
		ONNX: sentiment.ONNXConfig{
			SharedLibraryPath: cfg.ONNXRuntimeLib,
			ModelPath:         cfg.ONNXModelPath,
			TokenizerPath:     cfg.ONNXTokenizerPath,
			MaxSeqLen:         cfg.ONNXMaxSeqLen,
		},
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		StaticLabel:  cfg.StaticLabel,
		StaticScore:  cfg.StaticScore,
		CacheSize:    cfg.ClassifierCacheSize,
		CacheTTL:     cfg.ClassifierCacheTTL,
	}
}

func initializePolicy(cfg *config.Config) (*wish.Policy, *wish.PolicyWatcher, error) {
	policy, err := wish.NewPolicy(cfg.WishVariant)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedInitPolicy, err)
	}

	if cfg.WishPolicyFile == "" {
		slog.Info(LogMsgPolicyLoaded, "active", policy.Active().Name, "source", "builtin")
		return policy, nil, nil
	}

	if err := policy.LoadFile(cfg.WishPolicyFile); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPolicyFile, err)
	}
	slog.Info(LogMsgPolicyLoaded, "active", policy.Active().Name, "source", cfg.WishPolicyFile)

	return policy, wish.NewPolicyWatcher(policy, cfg.WishPolicyFile), nil
}

func initializeLuckTally(ctx context.Context, cfg *config.Config) (luck.Tally, error) {
	if cfg.RedisURL == "" {
		slog.Info(LogMsgLuckTallyMemory, "ttl", cfg.LuckTTL)
		return luck.NewMemoryTally(cfg.LuckTTL), nil
	}

	tally, err := luck.NewRedisTally(ctx, cfg.RedisURL, cfg.LuckTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitLuckTally, err)
	}
	slog.Info(LogMsgLuckTallyRedis, "ttl", cfg.LuckTTL)
	return tally, nil
}

func closeComponent(name string, c any) {
	closer, ok := c.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Error(name+LogMsgComponentCloseFailed, "error", err)
	}
}
