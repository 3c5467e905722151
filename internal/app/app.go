package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/ctxlog"
	"github.com/vk/recordkit/internal/hcl"
	"github.com/vk/recordkit/internal/record"
	"github.com/vk/recordkit/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	factory  *record.Factory
	model    *config.Model
	types    []*record.Type
}

// NewApp is the constructor for the main application. It loads every
// definition, registers the Go handler modules, validates the two against
// each other and defines the declared record types. Any failure is a fatal
// startup error and panics.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.DefsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load definitions: %w", err))
	}
	logger.Debug("Definitions loaded into unified model.", "records", len(model.Records))

	reg := registry.New(logger)
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateDefinitions(ctx, model); err != nil {
		panic(err)
	}
	logger.Debug("Definition validation passed.")

	factory := record.NewFactory(logger, reg)
	converter := hcl.NewConverter()
	types, err := reg.DefineRecords(ctx, factory, model, converter.ExprMethod)
	if err != nil {
		panic(fmt.Errorf("failed to define record types: %w", err))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		factory:  factory,
		model:    model,
		types:    types,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Factory returns the factory bound to the application's registry.
func (a *App) Factory() *record.Factory {
	return a.factory
}
