package output

import "encoding/json"

// ToJSON serializes a plotly figure.
func ToJSON(fig *Figure, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(fig, "", "  ")
	}
	return json.Marshal(fig)
}
