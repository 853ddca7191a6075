package sanitize

import (
	"reflect"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// LayoutAxes are the axes whose range is normalized by Layout.
var LayoutAxes = []string{"x", "y"}

// Layout normalizes the x and y axis ranges in place.
func Layout(layout models.Layout) {
	for _, axis := range LayoutAxes {
		LayoutRange(layout, axis)
	}
}

// LayoutRange sets layout["{axis}axis"]["range"] to nil unless it holds
// exactly two elements. A null range is left alone.
func LayoutRange(layout models.Layout, axis string) {
	ax := layout.Axis(axis)
	if ax == nil {
		return
	}
	r, ok := ax["range"]
	if !ok || r == nil {
		return
	}
	if seqLen(r) != 2 {
		ax["range"] = nil
	}
}

// seqLen returns the length of a slice or array value, or -1 for anything else.
func seqLen(v interface{}) int {
	if s, ok := v.([]interface{}); ok {
		return len(s)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return -1
}
