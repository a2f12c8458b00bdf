package codec

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

type tomlCodec struct{}

// TOML returns a TOML v1.0 codec. Date and time values become RFC 3339 strings.
func TOML() Codec { return tomlCodec{} }

func (tomlCodec) Name() string         { return "toml" }
func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Thaw(data []byte) (any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, &datapkg.ParseError{Format: "toml", Err: err}
	}
	if out == nil {
		out = map[string]any{}
	}
	normalized, err := normalize(out)
	if err != nil {
		return nil, &datapkg.ParseError{Format: "toml", Err: err}
	}
	return normalized, nil
}
