package output

import (
	"fmt"
	"strconv"
)

// floats converts a 1-D sequence of numbers to []float64.
// It returns false if v is not a sequence or holds a non-numeric element.
func floats(v interface{}) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []interface{}:
		out := make([]float64, 0, len(s))
		for _, item := range s {
			f, ok := number(item)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// labels converts a 1-D sequence to display strings.
func labels(v interface{}) []string {
	switch s := v.(type) {
	case []interface{}:
		out := make([]string, len(s))
		for i, item := range s {
			out[i] = label(item)
		}
		return out
	case []float64:
		out := make([]string, len(s))
		for i, f := range s {
			out[i] = label(f)
		}
		return out
	}
	return nil
}

func label(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// sequence returns v as a slice of cells, or nil if v is not a sequence.
func sequence(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []float64:
		out := make([]interface{}, len(s))
		for i, f := range s {
			out[i] = f
		}
		return out
	}
	return nil
}
