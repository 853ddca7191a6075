package sanitize

import (
	"encoding/json"
	"fmt"
	"math"
)

// Flatten returns the numeric leaves of an arbitrarily nested array in
// depth-first order. A scalar yields a one-element slice. A null leaf marks a
// gap and becomes NaN.
func Flatten(v interface{}) ([]float64, error) {
	var out []float64
	if err := flattenInto(&out, v); err != nil {
		return nil, err
	}
	if out == nil {
		out = []float64{}
	}
	return out, nil
}

func flattenInto(out *[]float64, v interface{}) error {
	switch val := v.(type) {
	case nil:
		*out = append(*out, math.NaN())
	case []interface{}:
		for _, item := range val {
			if err := flattenInto(out, item); err != nil {
				return err
			}
		}
	case []float64:
		*out = append(*out, val...)
	case float64:
		*out = append(*out, val)
	case int:
		*out = append(*out, float64(val))
	case int64:
		*out = append(*out, float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return fmt.Errorf("%w: %q is not numeric", ErrInvalidField, val.String())
		}
		*out = append(*out, f)
	default:
		return fmt.Errorf("%w: %v (%T) is not numeric", ErrInvalidField, v, v)
	}
	return nil
}
