package env_vars

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
)

const (
	// PackageName is the name the environment package is registered under.
	PackageName = "Env"

	TypeMap  datapkg.Type = "Env.Map"
	TypeList datapkg.Type = "Env.List"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Environ returns the process environment. Nil means os.Environ.
	Environ func() []string
}

func (m *Module) environ() []string {
	if m.Environ != nil {
		return m.Environ()
	}
	return os.Environ()
}

// asMap is the provider for Env.Map.
func (m *Module) asMap(ctx context.Context, _ *datapkg.Handle) (any, error) {
	envMap := make(map[string]string)
	for _, e := range m.environ() {
		key, value, ok := strings.Cut(e, "=")
		if ok {
			envMap[key] = value
		}
	}
	ctxlog.FromContext(ctx).Debug("Collected environment variables.", "count", len(envMap))
	return envMap, nil
}

// asList is the provider for Env.List. Entries are sorted.
func (m *Module) asList(_ context.Context, _ *datapkg.Handle) (any, error) {
	list := slices.Clone(m.environ())
	slices.Sort(list)
	return list, nil
}

// Register registers the Env package.
func (m *Module) Register(r *registry.Registry) {
	r.Register(datapkg.Define(PackageName, "1.0.0").
		Provide(TypeMap, m.asMap).
		Provide(TypeList, m.asList).
		MustBuild())
}
