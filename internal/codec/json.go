package codec

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

type jsonCodec struct{}

// JSON returns a JSON codec (RFC 8259). Numbers are kept as json.Number
// until the value is normalized, so integers survive unchanged.
func JSON() Codec { return jsonCodec{} }

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Thaw(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, &datapkg.ParseError{Format: "json", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &datapkg.ParseError{Format: "json", Err: errTrailingData}
	}
	out, err := normalize(out)
	if err != nil {
		return nil, &datapkg.ParseError{Format: "json", Err: err}
	}
	return out, nil
}
