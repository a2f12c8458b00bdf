package datapkg

import "context"

// Type identifies a representation a package's data can be produced as,
// e.g. "IniMap" or "Config.Tiny".
type Type string

// Any is the empty Type. As a filter it matches every representation.
const Any Type = ""

// String implements the fmt.Stringer interface for Type.
func (t Type) String() string {
	if t == Any {
		return "<any>"
	}
	return string(t)
}

// ProviderFunc produces one representation of a package's data.
type ProviderFunc func(ctx context.Context, h *Handle) (any, error)

// Loader turns raw content into a parsed structure.
type Loader interface {
	Thaw(data []byte) (any, error)
}

// Source yields the raw, unparsed content backing a package.
type Source interface {
	Raw(ctx context.Context, pkg *Package) ([]byte, error)
}

// Config holds the per-package overrides fixed at definition time.
type Config struct {
	// LoaderOverride thaws the raw content returned by the source.
	LoaderOverride Loader
	// SourceOverride supplies the raw content.
	SourceOverride Source
	// ExplicitCapabilityList, when non-nil, is the authoritative ordered
	// list of representation types the package provides.
	ExplicitCapabilityList []Type
}
