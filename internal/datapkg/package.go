package datapkg

import "slices"

// Package is one data product. It is immutable once built and safe for
// concurrent use.
type Package struct {
	name     string
	version  string
	bindings map[Type]ProviderFunc
	order    []Type
	cfg      Config
	err      error
}

// Name returns the package's unique, namespaced name.
func (p *Package) Name() string { return p.name }

// Version returns the package's version string.
func (p *Package) Version() string { return p.version }

// Err returns the error recorded while the package was defined, if any.
func (p *Package) Err() error { return p.err }

// Config returns a copy of the package's configuration.
func (p *Package) Config() Config {
	cfg := p.cfg
	cfg.ExplicitCapabilityList = slices.Clone(p.cfg.ExplicitCapabilityList)
	return cfg
}

// Explicit returns the author-declared capability list and whether one was
// declared at all. An explicitly declared empty list is still authoritative.
func (p *Package) Explicit() ([]Type, bool) {
	if p.cfg.ExplicitCapabilityList == nil {
		return nil, false
	}
	return slices.Clone(p.cfg.ExplicitCapabilityList), true
}

// Bound returns the representation types that have a provider binding, in
// registration order.
func (p *Package) Bound() []Type {
	return slices.Clone(p.order)
}

// Provider returns the function bound to t. Bindings left out of an explicit
// capability list are still returned here.
func (p *Package) Provider(t Type) (ProviderFunc, bool) {
	fn, ok := p.bindings[t]
	return fn, ok
}

// NewHandle creates a fresh handle for the package.
func (p *Package) NewHandle() *Handle {
	return &Handle{pkg: p}
}
