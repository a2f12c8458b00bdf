package codec

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// normalize rewrites decoder-specific shapes into the generic ones shared by
// all codecs: string-keyed maps, []any, int64/float64 numbers. Unsigned
// integers stay uint64 only when they overflow int64.
func normalize(v any) (any, error) {
	switch tv := v.(type) {
	case map[string]any:
		for k, e := range tv {
			n, err := normalize(e)
			if err != nil {
				return nil, fmt.Errorf("in key %q: %w", k, err)
			}
			tv[k] = n
		}
		return tv, nil
	case map[any]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			n, err := normalize(e)
			if err != nil {
				return nil, fmt.Errorf("in key %q: %w", fmt.Sprint(k), err)
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		for i, e := range tv {
			n, err := normalize(e)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", i, err)
			}
			tv[i] = n
		}
		return tv, nil
	case json.Number:
		if i, err := tv.Int64(); err == nil {
			return i, nil
		}
		f, err := tv.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s is out of range", tv)
		}
		return f, nil
	case int:
		return int64(tv), nil
	case int8:
		return int64(tv), nil
	case int16:
		return int64(tv), nil
	case int32:
		return int64(tv), nil
	case uint:
		return unsigned(uint64(tv)), nil
	case uint8:
		return int64(tv), nil
	case uint16:
		return int64(tv), nil
	case uint32:
		return int64(tv), nil
	case uint64:
		return unsigned(tv), nil
	case float32:
		return float64(tv), nil
	case time.Time:
		return tv.Format(time.RFC3339Nano), nil
	case encoding.TextMarshaler:
		// TOML local dates and times.
		if text, err := tv.MarshalText(); err == nil {
			return string(text), nil
		}
		return v, nil
	default:
		return v, nil
	}
}

func unsigned(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}
