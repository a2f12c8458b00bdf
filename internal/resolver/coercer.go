package resolver

import (
	"context"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Coercer produces an instance of a target representation from a handle.
// Implementations return an error wrapping datapkg.ErrUnsupported when they
// cannot produce the target at all.
type Coercer interface {
	Coerce(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (any, error)
}

// CoercerFunc adapts a function to the Coercer interface.
type CoercerFunc func(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (any, error)

// Coerce calls f.
func (f CoercerFunc) Coerce(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (any, error) {
	return f(ctx, h, target)
}

// Direct invokes the provider bound to the target and returns its result
// unchanged.
type Direct struct{}

// Coerce implements the Coercer interface.
func (Direct) Coerce(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (any, error) {
	return h.Call(ctx, target)
}
