// Package codec provides the thaw codecs that turn a data package's raw
// content into a plain Go structure.
//
// Every codec produces the same generic shapes (map[string]any, []any and
// scalars) so that providers and coercers never depend on the storage
// format.
package codec

import (
	"path/filepath"
	"strings"
	"sync"
)

// Codec thaws raw content of one format. It satisfies datapkg.Loader.
type Codec interface {
	// Name returns the short format name, e.g. "yaml".
	Name() string
	// Extensions lists the file extensions, with leading dot, the format uses.
	Extensions() []string
	// Thaw parses data. Failures are *datapkg.ParseError.
	Thaw(data []byte) (any, error)
}

// Registry maps format names and file extensions to codecs.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byExt  map[string]Codec
}

// NewRegistry constructs a registry preloaded with every built-in codec.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]Codec),
		byExt:  make(map[string]Codec),
	}
	r.Register(JSON())
	r.Register(YAML())
	r.Register(TOML())
	r.Register(CBOR())
	r.Register(HCL())
	return r
}

// Register adds a codec, replacing any codec with the same name or extension.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[strings.ToLower(c.Name())] = c
	for _, ext := range c.Extensions() {
		r.byExt[strings.ToLower(ext)] = c
	}
}

// Get returns the codec registered under name.
func (r *Registry) Get(name string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// ForPath returns the codec registered for the extension of path.
func (r *Registry) ForPath(path string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return c, ok
}
