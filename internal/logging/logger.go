// Package logging hands out categorized zap loggers for the playground programs.
// Output goes to stderr so it never mixes with what the programs print.
// Categories can be switched off individually through logging.categories.
package logging

import (
	"fmt"
	"sync"

	"playground/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config loading
	CategoryConfig  Category = "config"  // Config resolution and overrides
	CategoryGame    Category = "game"    // Guessing game rounds
	CategoryLesson  Category = "lesson"  // Lesson catalog and rendering
	CategorySandbox Category = "sandbox" // Snippet interpretation
)

var (
	root     = zap.NewNop()
	settings config.LoggingConfig
	mu       sync.RWMutex
)

// New builds the root logger from config. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = !verbose

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs logger as the root for Get and remembers category toggles.
func Initialize(logger *zap.Logger, cfg config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	root = logger
	settings = cfg
}

// Get returns the logger for a category. Disabled categories get a no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !settings.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
