package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/datapkg/internal/codec"
	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/manifest"
	"github.com/specialistvlad/datapkg/internal/registry"
	"github.com/specialistvlad/datapkg/internal/resolver"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger   *slog.Logger
	logFile  io.Closer
	registry *registry.Registry
	adapter  *resolver.Adapter
	resolver *resolver.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are given, the compiled-in core modules are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logW, logFile := logWriter(cfg, outW)
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{logger: logger, logFile: logFile}
	if err := a.init(ctx, cfg, modules); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context, cfg *Config, modules []registry.Module) error {
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	if err := registerModules(reg, modules); err != nil {
		return err
	}
	a.logger.Debug("All Go modules registered.", "count", len(modules))

	a.adapter = resolver.NewAdapter(nil)
	if len(cfg.ManifestPaths) > 0 {
		loader := manifest.NewLoader(codec.NewRegistry())
		model, err := reg.LoadManifests(ctx, loader, cfg.ManifestPaths...)
		if err != nil {
			return fmt.Errorf("failed to load manifests: %w", err)
		}
		if err := applyAdaptations(a.adapter, model.Adaptations); err != nil {
			return fmt.Errorf("failed to load manifests: %w", err)
		}
		a.logger.Debug("Manifest adaptations bound.", "count", len(model.Adaptations))
	}

	if err := reg.ValidateRegistry(ctx); err != nil {
		return err
	}
	a.logger.Debug("Registry validation passed.")

	a.registry = reg
	a.resolver = resolver.New(reg, resolver.WithCoercer(a.adapter))
	return nil
}

// applyAdaptations binds the adaptations declared by manifest type blocks.
func applyAdaptations(adapter *resolver.Adapter, adaptations map[datapkg.Type]manifest.Adaptation) error {
	for t, ad := range adaptations {
		if ad.From != "" {
			if err := adapter.Derive(t, ad.From); err != nil {
				return err
			}
		}
		if ad.Schema != nil {
			adapter.BindSchema(t, *ad.Schema)
		}
	}
	return nil
}

// registerModules turns registration panics, such as duplicate package
// names, into errors.
func registerModules(reg *registry.Registry, modules []registry.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module registration failed: %v", r)
		}
	}()
	for _, mod := range modules {
		mod.Register(reg)
	}
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Adapter returns the coercion adapter used by Get. It already holds the
// adaptations declared by manifest type blocks; programs embedding the App
// may add Go bindings, which take effect on the next Get.
func (a *App) Adapter() *resolver.Adapter {
	return a.adapter
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Packages returns the registered packages in registration order.
func (a *App) Packages() []*datapkg.Package {
	names := a.registry.Names()
	pkgs := make([]*datapkg.Package, 0, len(names))
	for _, name := range names {
		pkg, _ := a.registry.Lookup(name)
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

// Provides lists the representation types the named package offers that
// satisfy filter.
func (a *App) Provides(name string, filter datapkg.Type) ([]datapkg.Type, error) {
	pkg, ok := a.registry.Lookup(name)
	if !ok {
		return nil, &datapkg.ConfigurationError{Package: name, Err: datapkg.ErrUnknownPackage}
	}
	return a.registry.Provides(pkg, filter)
}

// Count returns the number of types Provides would list.
func (a *App) Count(name string, filter datapkg.Type) (int, error) {
	pkg, ok := a.registry.Lookup(name)
	if !ok {
		return 0, &datapkg.ConfigurationError{Package: name, Err: datapkg.ErrUnknownPackage}
	}
	return a.registry.Count(pkg, filter)
}

// TypeRelations returns the declared is-a parents of every related type.
func (a *App) TypeRelations() map[datapkg.Type][]datapkg.Type {
	tx := a.registry.Taxonomy()
	out := make(map[datapkg.Type][]datapkg.Type)
	for _, t := range tx.Types() {
		out[t] = tx.Parents(t)
	}
	return out
}

// Get produces an instance of the named package. ok is false when the
// package cannot provide want.
func (a *App) Get(ctx context.Context, name string, want datapkg.Type) (any, bool, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.resolver.GetByName(ctx, name, want)
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
