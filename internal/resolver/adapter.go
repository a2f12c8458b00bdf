package resolver

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/ctyconv"
	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Adapter is a generic coercion facility built on cty. For representation
// types it knows about, it takes the result produced by the next coercer and
// converts it into a declared shape; every other request passes straight
// through.
//
// Bindings are meant to be configured during startup, before the adapter is
// shared.
type Adapter struct {
	next Coercer

	mu      sync.RWMutex
	targets map[datapkg.Type]adaptTarget
}

type adaptTarget struct {
	// from is the representation whose provider feeds the conversion.
	from datapkg.Type
	// schema is the cty shape of the result, used only when hasSchema is set.
	schema    cty.Type
	hasSchema bool
	// proto is the Go type decoded into when set.
	proto reflect.Type
}

// NewAdapter wraps next. A nil next defaults to Direct.
func NewAdapter(next Coercer) *Adapter {
	if next == nil {
		next = Direct{}
	}
	return &Adapter{next: next, targets: make(map[datapkg.Type]adaptTarget)}
}

// Bind makes t produce values of proto's Go type. proto may be a value or a
// pointer; struct fields are matched through `cty` tags. The instance
// returned by Coerce is a pointer to a new value.
func (a *Adapter) Bind(t datapkg.Type, proto any) error {
	rt := reflect.TypeOf(proto)
	if rt == nil {
		return fmt.Errorf("cannot bind %s to a nil prototype", t)
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	schema, err := gocty.ImpliedType(reflect.Zero(rt).Interface())
	if err != nil {
		return fmt.Errorf("cannot bind %s to %s: %w", t, rt, err)
	}
	a.set(t, func(tg *adaptTarget) {
		tg.schema = schema
		tg.hasSchema = true
		tg.proto = rt
	})
	return nil
}

// BindSchema makes t produce cty values conforming to schema.
func (a *Adapter) BindSchema(t datapkg.Type, schema cty.Type) {
	a.set(t, func(tg *adaptTarget) {
		tg.schema = schema
		tg.hasSchema = true
		tg.proto = nil
	})
}

// Derive makes t producible from the provider of from, so t needs no
// binding of its own. Combined with Bind or BindSchema the result is
// converted; otherwise it is returned unchanged.
func (a *Adapter) Derive(t, from datapkg.Type) error {
	if t == from {
		return fmt.Errorf("cannot derive %s from itself", t)
	}
	a.set(t, func(tg *adaptTarget) { tg.from = from })
	return nil
}

func (a *Adapter) set(t datapkg.Type, fn func(*adaptTarget)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	tg, ok := a.targets[t]
	if !ok {
		tg = adaptTarget{from: t}
	}
	fn(&tg)
	a.targets[t] = tg
}

// Coerce implements the Coercer interface.
func (a *Adapter) Coerce(ctx context.Context, h *datapkg.Handle, target datapkg.Type) (any, error) {
	a.mu.RLock()
	tg, ok := a.targets[target]
	a.mu.RUnlock()
	if !ok {
		return a.next.Coerce(ctx, h, target)
	}

	raw, err := a.next.Coerce(ctx, h, tg.from)
	if err != nil {
		return nil, err
	}
	if !tg.hasSchema {
		return raw, nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adapting provider result.", "package", h.Package().Name(), "from", tg.from.String(), "to", target.String(), "schema", tg.schema.FriendlyName())

	val, err := ctyconv.FromNative(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s result: %w", datapkg.ErrUnsupported, tg.from, err)
	}
	converted, err := convert.Convert(val, tg.schema)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %s into %s: %w", datapkg.ErrUnsupported, tg.from, tg.schema.FriendlyName(), err)
	}
	if tg.proto == nil {
		return converted, nil
	}

	out := reflect.New(tg.proto)
	if err := gocty.FromCtyValue(converted, out.Interface()); err != nil {
		return nil, fmt.Errorf("%w: cannot decode into %s: %w", datapkg.ErrUnsupported, tg.proto, err)
	}
	return out.Interface(), nil
}
