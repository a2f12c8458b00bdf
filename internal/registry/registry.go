package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Module is the interface that compiled-in data modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the data packages and the type taxonomy of a single
// application instance. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	packages map[string]*datapkg.Package
	order    []string
	taxonomy *Taxonomy
}

// Option configures a Registry.
type Option func(*Registry)

// WithTaxonomy makes the registry use an existing taxonomy.
func WithTaxonomy(t *Taxonomy) Option {
	return func(r *Registry) { r.taxonomy = t }
}

// New creates and initializes a new Registry instance.
func New(opts ...Option) *Registry {
	r := &Registry{packages: make(map[string]*datapkg.Package)}
	for _, opt := range opts {
		opt(r)
	}
	if r.taxonomy == nil {
		r.taxonomy = NewTaxonomy()
	}
	return r
}

// Taxonomy returns the registry's type taxonomy.
func (r *Registry) Taxonomy() *Taxonomy { return r.taxonomy }

// Register adds a package. Registering two packages under one name is a
// programming error and panics.
func (r *Registry) Register(pkg *datapkg.Package) {
	if pkg == nil {
		panic("registry: cannot register a nil package")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.packages[pkg.Name()]; exists {
		panic(fmt.Sprintf("data package with name '%s' already registered", pkg.Name()))
	}
	slog.Debug("Registering data package.", "name", pkg.Name(), "version", pkg.Version())
	r.packages[pkg.Name()] = pkg
	r.order = append(r.order, pkg.Name())
}

// Lookup returns the package registered under name.
func (r *Registry) Lookup(name string) (*datapkg.Package, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkg, ok := r.packages[name]
	return pkg, ok
}

// Names returns the registered package names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}
