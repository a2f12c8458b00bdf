// Package formats registers the "Formats" data package, a table of the data
// formats the built-in loaders understand. Its content is embedded in the
// binary.
package formats

import (
	"context"
	"embed"
	"fmt"

	"github.com/specialistvlad/datapkg/internal/codec"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
	"github.com/specialistvlad/datapkg/internal/resolver"
	"github.com/specialistvlad/datapkg/internal/source"
)

const PackageName = "Formats"

const (
	TypeDocument datapkg.Type = "Document"
	TypeTable    datapkg.Type = "Formats.Table"
	TypeNames    datapkg.Type = "Formats.Names"
)

//go:embed formats.yaml
var content embed.FS

// Format is one row of the Formats.Table representation.
type Format struct {
	Name       string   `cty:"name" json:"name" yaml:"name"`
	Extensions []string `cty:"extensions" json:"extensions" yaml:"extensions"`
	MediaType  string   `cty:"media_type" json:"media_type" yaml:"media_type"`
}

// Module implements the registry.Module interface for this package.
type Module struct {
	// Source replaces the embedded table. Nil means the embedded one.
	Source datapkg.Source
}

// Register registers the Formats package.
func (m *Module) Register(r *registry.Registry) {
	// Providers never call each other; each thaws the content once.
	table := resolver.NewAdapter(resolver.CoercerFunc(
		func(ctx context.Context, h *datapkg.Handle, _ datapkg.Type) (any, error) {
			return h.Data(ctx)
		}))
	if err := table.Bind(TypeTable, []Format{}); err != nil {
		panic(fmt.Sprintf("formats: %v", err))
	}
	readTable := func(ctx context.Context, h *datapkg.Handle) ([]Format, error) {
		v, err := table.Coerce(ctx, h, TypeTable)
		if err != nil {
			return nil, err
		}
		return *v.(*[]Format), nil
	}

	src := m.Source
	if src == nil {
		src = source.FS(content, "formats.yaml")
	}

	r.Register(datapkg.Define(PackageName, "1.0.0").
		WithSource(src).
		WithLoader(codec.YAML()).
		Explicit(TypeTable, TypeNames, TypeDocument).
		Provide(TypeDocument, func(ctx context.Context, h *datapkg.Handle) (any, error) {
			return h.Data(ctx)
		}).
		Provide(TypeTable, func(ctx context.Context, h *datapkg.Handle) (any, error) {
			return readTable(ctx, h)
		}).
		Provide(TypeNames, func(ctx context.Context, h *datapkg.Handle) (any, error) {
			rows, err := readTable(ctx, h)
			if err != nil {
				return nil, err
			}
			names := make([]string, len(rows))
			for i, row := range rows {
				names[i] = row.Name
			}
			return names, nil
		}).
		MustBuild())
}
