package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/ctyconv"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/source"
)

// translatePackage turns a decoded package block into a data package.
// Representation bindings come first so they are preferred when no explicit
// list is given; Document and Raw follow.
func (l *Loader) translatePackage(ctx context.Context, pb *packageBlock, file string) (*datapkg.Package, error) {
	logger := ctxlog.FromContext(ctx).With("package", pb.Name)
	b := datapkg.Define(pb.Name, pb.Version)

	var srcPath string
	switch {
	case pb.Source != "" && pb.Data != nil:
		return nil, fmt.Errorf("package %q: 'source' and 'data' are mutually exclusive", pb.Name)
	case pb.Source != "":
		srcPath = pb.Source
		if !filepath.IsAbs(srcPath) {
			srcPath = filepath.Join(filepath.Dir(file), srcPath)
		}
		b.WithSource(source.File(srcPath))
	case pb.Data != nil:
		b.WithSource(source.Bytes([]byte(*pb.Data)))
	}

	switch {
	case pb.Loader != "":
		c, ok := l.codecs.Get(pb.Loader)
		if !ok {
			return nil, fmt.Errorf("package %q: unknown loader %q", pb.Name, pb.Loader)
		}
		b.WithLoader(c)
	case srcPath != "":
		if c, ok := l.codecs.ForPath(srcPath); ok {
			logger.Debug("Loader inferred from source extension.", "loader", c.Name())
			b.WithLoader(c)
		}
	}

	for _, rb := range pb.Representations {
		schema, err := typeExprToCtyType(ctx, rb.Schema)
		if err != nil {
			return nil, fmt.Errorf("package %q, representation %q: %w", pb.Name, rb.Name, err)
		}
		b.Provide(datapkg.Type(rb.Name), schemaProvider(schema))
	}
	b.Provide(TypeDocument, func(ctx context.Context, h *datapkg.Handle) (any, error) {
		return h.Data(ctx)
	})
	b.Provide(TypeRaw, func(ctx context.Context, h *datapkg.Handle) (any, error) {
		return h.Raw(ctx)
	})

	if isExprDefined(ctx, pb.Provides, "provides") {
		var list []string
		if diags := gohcl.DecodeExpression(pb.Provides, nil, &list); diags.HasErrors() {
			return nil, fmt.Errorf("package %q: invalid provides list: %w", pb.Name, diags)
		}
		types := make([]datapkg.Type, len(list))
		for i, name := range list {
			types[i] = datapkg.Type(name)
		}
		b.Explicit(types...)
	}

	logger.Debug("Translated manifest package.", "version", pb.Version, "source", srcPath, "representations", len(pb.Representations))
	return b.Build(), nil
}

// translateAdaptation reads the from and schema attributes of a type block.
// ok is false when the block declares neither.
func translateAdaptation(ctx context.Context, tb *typeBlock) (Adaptation, bool, error) {
	var ad Adaptation
	if tb.From != "" && tb.From == tb.Name {
		return ad, false, fmt.Errorf("type %q cannot be derived from itself", tb.Name)
	}
	ad.From = datapkg.Type(tb.From)
	if isExprDefined(ctx, tb.Schema, "schema") {
		schema, err := typeExprToCtyType(ctx, tb.Schema)
		if err != nil {
			return ad, false, fmt.Errorf("type %q: %w", tb.Name, err)
		}
		ad.Schema = &schema
	}
	return ad, ad.From != "" || ad.Schema != nil, nil
}

// schemaProvider converts the package document into a value of schema.
func schemaProvider(schema cty.Type) datapkg.ProviderFunc {
	return func(ctx context.Context, h *datapkg.Handle) (any, error) {
		doc, err := h.Data(ctx)
		if err != nil {
			return nil, err
		}
		val, err := ctyconv.FromNative(doc)
		if err != nil {
			return nil, err
		}
		converted, err := convert.Convert(val, schema)
		if err != nil {
			return nil, fmt.Errorf("document does not match %s: %w", schema.FriendlyName(), err)
		}
		return converted, nil
	}
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with zero-width
// expressions, so a nil check alone is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
