package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/manifest"
)

// LoadManifests loads every manifest found under paths, declares its type
// relations and registers its packages. The model is returned so callers can
// apply its adaptations to their coercer.
func (r *Registry) LoadManifests(ctx context.Context, loader *manifest.Loader, paths ...string) (*manifest.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading manifests...", "paths", paths)

	model, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}
	if len(model.Files) == 0 {
		logger.Warn("No .hcl manifest files found", "paths", paths)
		return model, nil
	}

	for child, parents := range model.Relations {
		if err := r.taxonomy.Declare(child, parents...); err != nil {
			return nil, fmt.Errorf("failed to declare type relations: %w", err)
		}
	}
	for _, pkg := range model.Packages {
		if _, exists := r.Lookup(pkg.Name()); exists {
			return nil, fmt.Errorf("manifest package %q conflicts with an already registered package", pkg.Name())
		}
		r.Register(pkg)
	}

	logger.Info("Manifests loaded successfully.", "files", len(model.Files), "packages_loaded", len(model.Packages))
	return model, nil
}
