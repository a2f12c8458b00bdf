package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/datapkg/internal/ctyconv"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDump = "dump"
	FormatRaw  = "raw"
	FormatText = "text"
)

var dumpConfig = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

// writeValue renders v in format.
func writeValue(w io.Writer, format string, v any) error {
	if format == FormatDump {
		dumpConfig.Fdump(w, v)
		return nil
	}
	if format == FormatRaw {
		switch tv := v.(type) {
		case []byte:
			_, err := w.Write(tv)
			return err
		case string:
			_, err := io.WriteString(w, tv)
			return err
		default:
			return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("format %q needs a byte or string instance, got %T", format, v)}
		}
	}

	plain, err := plainValue(v)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plain)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(plain); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unknown output format %q: must be 'json', 'yaml', 'dump' or 'raw'", format)}
	}
}

// plainValue unwraps cty values so the encoders see ordinary Go data.
func plainValue(v any) (any, error) {
	val, ok := v.(cty.Value)
	if !ok {
		return v, nil
	}
	return ctyconv.ToNative(val)
}
