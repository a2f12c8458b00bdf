package codec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/specialistvlad/datapkg/internal/ctyconv"
	"github.com/specialistvlad/datapkg/internal/datapkg"
)

type hclCodec struct{}

// HCL returns a codec for HCL attribute documents: a flat set of
// `name = expression` pairs evaluated without variables or functions.
// Nested blocks are rejected.
func HCL() Codec { return hclCodec{} }

func (hclCodec) Name() string         { return "hcl" }
func (hclCodec) Extensions() []string { return []string{".hcl"} }

func (hclCodec) Thaw(data []byte) (any, error) {
	file, diags := hclsyntax.ParseConfig(data, "data.hcl", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, &datapkg.ParseError{Format: "hcl", Err: diags}
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &datapkg.ParseError{Format: "hcl", Err: diags}
	}

	out := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &datapkg.ParseError{Format: "hcl", Err: diags}
		}
		native, err := ctyconv.ToNative(val)
		if err != nil {
			return nil, &datapkg.ParseError{Format: "hcl", Err: fmt.Errorf("attribute %q: %w", name, err)}
		}
		out[name] = native
	}
	return out, nil
}
