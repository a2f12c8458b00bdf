package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/datapkg/internal/codec"
	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/fsutil"
)

// Loader reads HCL manifests.
type Loader struct {
	codecs *codec.Registry
}

// NewLoader creates a manifest loader that resolves `loader` names and
// source extensions through codecs. A nil registry uses the built-in codecs.
func NewLoader(codecs *codec.Registry) *Loader {
	if codecs == nil {
		codecs = codec.NewRegistry()
	}
	return &Loader{codecs: codecs}
}

// Load parses every .hcl file found under paths. Paths may be files or
// directories; paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := &Model{
		Relations:   make(map[datapkg.Type][]datapkg.Type),
		Adaptations: make(map[datapkg.Type]Adaptation),
		Files:       files,
	}
	seen := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		for _, tb := range root.Types {
			for _, parent := range tb.IsA {
				model.Relations[datapkg.Type(tb.Name)] = append(model.Relations[datapkg.Type(tb.Name)], datapkg.Type(parent))
			}
			ad, ok, err := translateAdaptation(ctx, tb)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", file, err)
			}
			if !ok {
				continue
			}
			if _, dup := model.Adaptations[datapkg.Type(tb.Name)]; dup {
				return nil, fmt.Errorf("manifest %s: type %q declares an adaptation twice", file, tb.Name)
			}
			model.Adaptations[datapkg.Type(tb.Name)] = ad
		}
		for _, pb := range root.Packages {
			if prev, dup := seen[pb.Name]; dup {
				return nil, fmt.Errorf("package %q in %s is already declared in %s", pb.Name, file, prev)
			}
			seen[pb.Name] = file

			pkg, err := l.translatePackage(ctx, pb, file)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", file, err)
			}
			model.Packages = append(model.Packages, pkg)
		}
	}

	logger.Debug("Manifest loading complete.", "packages", len(model.Packages), "types", len(model.Relations), "adaptations", len(model.Adaptations))
	return model, nil
}
