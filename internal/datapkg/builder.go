package datapkg

import (
	"errors"
	"fmt"
	"slices"
)

// Builder declares a Package. Definition mistakes are collected rather than
// returned so declarations can be written as a single chained expression;
// they surface later as a ConfigurationError.
type Builder struct {
	pkg  *Package
	errs []error
}

// Define starts the declaration of a package.
func Define(name, version string) *Builder {
	b := &Builder{pkg: &Package{
		name:     name,
		version:  version,
		bindings: make(map[Type]ProviderFunc),
	}}
	if name == "" {
		b.fail(errors.New("package name must not be empty"))
	}
	return b
}

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

// Provide binds a representation type to a provider function. Bindings are
// remembered in call order.
func (b *Builder) Provide(t Type, fn ProviderFunc) *Builder {
	switch {
	case t == Any:
		b.fail(errors.New("representation type must not be empty"))
	case fn == nil:
		b.fail(fmt.Errorf("provider for %s is nil", t))
	case b.pkg.bindings[t] != nil:
		b.fail(fmt.Errorf("%w: %s", ErrDuplicateBinding, t))
	default:
		b.pkg.bindings[t] = fn
		b.pkg.order = append(b.pkg.order, t)
	}
	return b
}

// Explicit sets the authoritative capability list. Calling it with no
// arguments declares an empty list, which hides every binding.
func (b *Builder) Explicit(types ...Type) *Builder {
	list := make([]Type, 0, len(types))
	seen := make(map[Type]struct{}, len(types))
	for _, t := range types {
		if t == Any {
			b.fail(errors.New("explicit capability list contains an empty type"))
			continue
		}
		if _, dup := seen[t]; dup {
			b.fail(fmt.Errorf("explicit capability list repeats %s", t))
			continue
		}
		seen[t] = struct{}{}
		list = append(list, t)
	}
	b.pkg.cfg.ExplicitCapabilityList = list
	return b
}

// WithLoader sets the loader used by Handle.Data.
func (b *Builder) WithLoader(l Loader) *Builder {
	b.pkg.cfg.LoaderOverride = l
	return b
}

// WithSource sets the source used by Handle.Raw.
func (b *Builder) WithSource(s Source) *Builder {
	b.pkg.cfg.SourceOverride = s
	return b
}

// WithConfig applies every field of cfg. A non-nil explicit list goes
// through the same checks as Explicit.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.pkg.cfg.LoaderOverride = cfg.LoaderOverride
	b.pkg.cfg.SourceOverride = cfg.SourceOverride
	if cfg.ExplicitCapabilityList != nil {
		b.Explicit(cfg.ExplicitCapabilityList...)
	}
	return b
}

// Build returns the declared package. Any recorded definition error is
// attached to it.
func (b *Builder) Build() *Package {
	pkg := &Package{
		name:     b.pkg.name,
		version:  b.pkg.version,
		bindings: make(map[Type]ProviderFunc, len(b.pkg.bindings)),
		order:    slices.Clone(b.pkg.order),
		cfg:      b.pkg.cfg,
		err:      errors.Join(b.errs...),
	}
	pkg.cfg.ExplicitCapabilityList = slices.Clone(b.pkg.cfg.ExplicitCapabilityList)
	for t, fn := range b.pkg.bindings {
		pkg.bindings[t] = fn
	}
	return pkg
}

// MustBuild is like Build but panics on a definition error.
func (b *Builder) MustBuild() *Package {
	pkg := b.Build()
	if pkg.err != nil {
		panic(&ConfigurationError{Package: pkg.name, Err: pkg.err})
	}
	return pkg
}
