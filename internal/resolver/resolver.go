package resolver

import (
	"context"
	"fmt"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
)

// Resolver produces instances of data packages registered in a registry.
type Resolver struct {
	registry *registry.Registry
	coercer  Coercer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCoercer replaces the default Direct coercer.
func WithCoercer(c Coercer) Option {
	return func(r *Resolver) { r.coercer = c }
}

// New creates a resolver backed by reg.
func New(reg *registry.Registry, opts ...Option) *Resolver {
	r := &Resolver{registry: reg, coercer: Direct{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *registry.Registry { return r.registry }

// Get produces an instance of pkg in the first representation that matches
// want, or in the package's preferred representation when want is
// datapkg.Any. ok is false, with a nil error, when pkg cannot provide want.
func (r *Resolver) Get(ctx context.Context, pkg *datapkg.Package, want datapkg.Type) (instance any, ok bool, err error) {
	instance, _, ok, err = r.get(ctx, pkg, want)
	return instance, ok, err
}

// get is Get that also reports the representation type it chose.
func (r *Resolver) get(ctx context.Context, pkg *datapkg.Package, want datapkg.Type) (any, datapkg.Type, bool, error) {
	candidates, err := r.registry.Provides(pkg, want)
	if err != nil {
		return nil, datapkg.Any, false, err
	}

	logger := ctxlog.FromContext(ctx)
	if len(candidates) == 0 {
		logger.Debug("Package cannot provide the requested representation.", "package", pkg.Name(), "want", want.String())
		return nil, datapkg.Any, false, nil
	}

	chosen := candidates[0]
	logger.Debug("Resolving data package.", "package", pkg.Name(), "want", want.String(), "chosen", chosen.String(), "candidates", len(candidates))

	instance, err := r.coerce(ctx, pkg.NewHandle(), chosen)
	if err != nil {
		return nil, chosen, false, &datapkg.CoercionError{Package: pkg.Name(), Type: chosen, Err: err}
	}
	return instance, chosen, true, nil
}

// GetByName looks pkg up by name and calls Get.
func (r *Resolver) GetByName(ctx context.Context, name string, want datapkg.Type) (any, bool, error) {
	pkg, found := r.registry.Lookup(name)
	if !found {
		return nil, false, &datapkg.ConfigurationError{Package: name, Err: datapkg.ErrUnknownPackage}
	}
	return r.Get(ctx, pkg, want)
}

func (r *Resolver) coerce(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("provider panicked: %v", rec)
		}
	}()
	return r.coercer.Coerce(ctx, h, target)
}

// GetAs is Get with the instance asserted to T. An instance of another Go
// type is reported as a *datapkg.CoercionError.
func GetAs[T any](ctx context.Context, r *Resolver, pkg *datapkg.Package, want datapkg.Type) (T, bool, error) {
	var zero T
	v, chosen, ok, err := r.get(ctx, pkg, want)
	if err != nil || !ok {
		return zero, ok, err
	}
	typed, isT := v.(T)
	if !isT {
		return zero, false, &datapkg.CoercionError{
			Package: pkg.Name(),
			Type:    chosen,
			Err:     fmt.Errorf("%w: got %T, want %T", datapkg.ErrUnsupported, v, zero),
		}
	}
	return typed, true, nil
}
