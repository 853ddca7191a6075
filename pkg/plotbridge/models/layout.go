package models

// Layout represents chart-level presentation settings (titles, axes, size).
type Layout map[string]interface{}

// AxisKey returns the layout key for an axis name, e.g. "x" -> "xaxis".
func AxisKey(axis string) string {
	return axis + "axis"
}

// Axis returns the sub-mapping for the given axis, or nil if absent.
func (l Layout) Axis(axis string) map[string]interface{} {
	m, _ := l[AxisKey(axis)].(map[string]interface{})
	return m
}

// Title returns the figure title from either the string shorthand or the
// {"text": ...} form.
func (l Layout) Title() string {
	return TitleText(l["title"])
}

// TitleText extracts text from a plotly title value.
func TitleText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]interface{}:
		s, _ := t["text"].(string)
		return s
	}
	return ""
}
