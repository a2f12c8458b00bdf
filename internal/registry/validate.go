package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
)

// ValidateRegistry checks every registered package and reports all
// definition errors at once. Explicit capability entries that have no
// binding are legal but can only be served by a coercer, so they are
// logged as warnings.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		pkg, _ := r.Lookup(name)
		if err := pkg.Err(); err != nil {
			errs = append(errs, fmt.Sprintf("package '%s': %s", name, strings.ReplaceAll(err.Error(), "\n", "; ")))
			continue
		}

		explicit, ok := pkg.Explicit()
		if !ok {
			continue
		}
		for _, t := range explicit {
			if _, bound := pkg.Provider(t); !bound {
				logger.Warn("Explicit capability has no provider binding; only a coercer can produce it.", "package", name, "type", t.String())
			}
		}
		for _, t := range pkg.Bound() {
			if !slices.Contains(explicit, t) {
				logger.Debug("Provider binding is hidden by the explicit capability list.", "package", name, "type", t.String())
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
