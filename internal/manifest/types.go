package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Built-in representations of every manifest package.
const (
	TypeRaw      datapkg.Type = "Raw"
	TypeDocument datapkg.Type = "Document"
)

// Model is the format-agnostic result of loading manifests.
type Model struct {
	Packages    []*datapkg.Package
	Relations   map[datapkg.Type][]datapkg.Type
	Adaptations map[datapkg.Type]Adaptation
	Files       []string
}

// Adaptation is an application-wide coercion declared by a type block.
// From is empty when the type has its own providers; Schema is nil when
// the result is passed through unconverted.
type Adaptation struct {
	From   datapkg.Type
	Schema *cty.Type
}

// fileRoot is a struct used to decode all top-level blocks of a manifest.
type fileRoot struct {
	Packages []*packageBlock `hcl:"package,block"`
	Types    []*typeBlock    `hcl:"type,block"`
}

type packageBlock struct {
	Name            string                 `hcl:"name,label"`
	Version         string                 `hcl:"version,optional"`
	Source          string                 `hcl:"source,optional"`
	Data            *string                `hcl:"data,optional"`
	Loader          string                 `hcl:"loader,optional"`
	Provides        hcl.Expression         `hcl:"provides,optional"`
	Representations []*representationBlock `hcl:"representation,block"`
}

type representationBlock struct {
	Name   string         `hcl:"name,label"`
	Schema hcl.Expression `hcl:"schema"`
}

type typeBlock struct {
	Name   string         `hcl:"name,label"`
	IsA    []string       `hcl:"is_a,optional"`
	From   string         `hcl:"from,optional"`
	Schema hcl.Expression `hcl:"schema,optional"`
}
