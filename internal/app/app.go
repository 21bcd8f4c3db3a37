package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/slip44"
	"github.com/specialistvlad/slip44/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *slip44.Registry
	config   *Config
}

// NewApp is the constructor for the application. It builds its own logger,
// writing to logW, and its own registry from the configured table. Results
// are written to outW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var (
		reg *slip44.Registry
		err error
	)
	if cfg.TablePath == "" {
		logger.Debug("Using embedded coin table.")
		reg, err = slip44.Embedded(ctx)
	} else {
		logger.Debug("Loading coin table.", "path", cfg.TablePath)
		reg, err = slip44.Load(ctx, cfg.TablePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build coin registry: %w", err)
	}
	logger.Debug("Coin registry ready.", "coins", reg.Len(), "symbols", len(reg.Symbols()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *slip44.Registry {
	return a.registry
}
