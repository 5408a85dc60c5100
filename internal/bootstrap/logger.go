package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/WishEval_Go/internal/config"
	"github.com/osse101/WishEval_Go/internal/logger"
)

// SetupLogger initializes the application logger from cfg. When LOG_FILE is
// set, output goes to stdout and to a size-rotated file.
// Returns the log file closer (nil when logging to stdout only).
func SetupLogger(cfg *config.Config) io.Closer {
	addSource := cfg.Environment == config.EnvDev

	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	logCfg.File = cfg.LogFile
	if cfg.LogMaxSizeMB > 0 {
		logCfg.MaxSizeMB = cfg.LogMaxSizeMB
	}
	if cfg.LogMaxBackups > 0 {
		logCfg.MaxBackups = cfg.LogMaxBackups
	}
	if cfg.LogMaxAgeDays > 0 {
		logCfg.MaxAgeDays = cfg.LogMaxAgeDays
	}
	logCfg.CompressLogs = cfg.IsProduction()

	closer := logger.InitLogger(logCfg)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", cfg.LogFile)
	slog.Info(LogMsgStartingWishEval,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"base_url", cfg.BaseURL,
		"variant", cfg.WishVariant,
		"classifier", cfg.ClassifierProvider,
		"redis", cfg.RedisURL != "",
		"otel", cfg.OTELEnabled)

	return closer
}
