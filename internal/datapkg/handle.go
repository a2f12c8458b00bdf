package datapkg

import (
	"context"
	"fmt"
)

// Handle is the lightweight instance a provider is invoked against. It only
// records which package it came from.
type Handle struct {
	pkg *Package
}

// Package returns the package the handle was created for.
func (h *Handle) Package() *Package { return h.pkg }

// Raw returns the raw content backing the package, as supplied by the
// configured source. Without a source override there is no way to locate
// the content and ErrNotImplemented is returned.
func (h *Handle) Raw(ctx context.Context) ([]byte, error) {
	src := h.pkg.cfg.SourceOverride
	if src == nil {
		return nil, fmt.Errorf("default data source for package %q: %w", h.pkg.name, ErrNotImplemented)
	}
	return src.Raw(ctx, h.pkg)
}

// Data returns the package's raw content thawed by the configured loader.
func (h *Handle) Data(ctx context.Context) (any, error) {
	loader := h.pkg.cfg.LoaderOverride
	if loader == nil {
		return nil, fmt.Errorf("default loader for package %q: %w", h.pkg.name, ErrNotImplemented)
	}
	raw, err := h.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return loader.Thaw(raw)
}

// Call invokes the provider bound to t directly, whether or not t is
// reachable through the package's capability list.
func (h *Handle) Call(ctx context.Context, t Type) (any, error) {
	fn, ok := h.pkg.bindings[t]
	if !ok {
		return nil, fmt.Errorf("package %q has no provider for %s: %w", h.pkg.name, t, ErrUnsupported)
	}
	return fn(ctx, h)
}
