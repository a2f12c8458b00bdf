package codec

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

var errMultipleDocuments = errors.New("stream holds more than one document")

type yamlCodec struct{}

// YAML returns a YAML 1.2 codec. The input must hold at most one document.
func YAML() Codec { return yamlCodec{} }

func (yamlCodec) Name() string         { return "yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Thaw(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out any
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &datapkg.ParseError{Format: "yaml", Err: err}
	}
	var next any
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errMultipleDocuments
		}
		return nil, &datapkg.ParseError{Format: "yaml", Err: err}
	}
	out, err := normalize(out)
	if err != nil {
		return nil, &datapkg.ParseError{Format: "yaml", Err: err}
	}
	return out, nil
}
