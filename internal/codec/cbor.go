package codec

import (
	"reflect"

	cbor "github.com/fxamacker/cbor/v2"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

type cborCodec struct{ dec cbor.DecMode }

// CBOR returns a CBOR (RFC 8949) codec that decodes maps with string keys.
func CBOR() Codec {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		// The options are static; a failure here is a programming error.
		panic(err)
	}
	return cborCodec{dec: dm}
}

func (cborCodec) Name() string         { return "cbor" }
func (cborCodec) Extensions() []string { return []string{".cbor"} }

func (c cborCodec) Thaw(data []byte) (any, error) {
	var out any
	if err := c.dec.Unmarshal(data, &out); err != nil {
		return nil, &datapkg.ParseError{Format: "cbor", Err: err}
	}
	normalized, err := normalize(out)
	if err != nil {
		return nil, &datapkg.ParseError{Format: "cbor", Err: err}
	}
	return normalized, nil
}
