// Package output converts sanitized figures to plotly figure objects and
// writes them as HTML, JSON, PNG or xlsx.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// ErrUnsupportedTrace indicates a trace type the selected output cannot draw.
var ErrUnsupportedTrace = errors.New("unsupported trace")

// traceTypes maps each trace type to the plotly type discriminator.
var traceTypes = map[models.TraceType]grob.TraceType{
	models.TraceScatter:   grob.TraceTypeScatter,
	models.TracePie:       grob.TraceTypePie,
	models.TraceHeatmap:   grob.TraceTypeHeatmap,
	models.TraceSurface:   grob.TraceTypeSurface,
	models.TraceScatter3D: grob.TraceTypeScatter3d,
	models.TraceBar:       grob.TraceTypeBar,
	models.TraceHistogram: grob.TraceTypeHistogram,
}

// Trace is a plotly chart object holding its attributes as plain values, so
// array-capable attributes, zero values and title shorthands reach plotly.js
// unchanged.
type Trace struct {
	Type   grob.TraceType
	Fields map[string]interface{}
}

// GetType implements grob.Trace.
func (t *Trace) GetType() grob.TraceType {
	return t.Type
}

// MarshalJSON writes the attributes with the plotly "type" discriminator.
func (t *Trace) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(t.Fields)+1)
	for k, v := range t.Fields {
		out[k] = v
	}
	out["type"] = t.Type
	return json.Marshal(out)
}

// Figure is the plotly figure handed to plotly.js.
type Figure struct {
	Data   grob.Traces            `json:"data"`
	Layout map[string]interface{} `json:"layout"`
}

// NewTrace constructs the plotly chart object for tr, initialized from a copy
// of its fields.
func NewTrace(tr models.Trace) (*Trace, error) {
	tt, ok := traceTypes[tr.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTrace, tr.Type)
	}

	fields := plotlyValue(map[string]interface{}(tr.Fields)).(map[string]interface{})
	delete(fields, "type")
	return &Trace{Type: tt, Fields: fields}, nil
}

// NewLayout returns a copy of layout with title shorthands expanded.
func NewLayout(layout models.Layout) map[string]interface{} {
	return plotlyValue(map[string]interface{}(layout)).(map[string]interface{})
}

// ToPlotly builds the plotly figure for fig.
func ToPlotly(fig *models.Figure) (*Figure, error) {
	traces := make(grob.Traces, 0, len(fig.Traces))
	for _, tr := range fig.Traces {
		obj, err := NewTrace(tr)
		if err != nil {
			return nil, err
		}
		traces = append(traces, obj)
	}

	return &Figure{
		Data:   traces,
		Layout: NewLayout(fig.Layout),
	}, nil
}

// plotlyValue deep-copies v. Every "title" string in a nested mapping becomes
// {"text": title} and NaN becomes null.
func plotlyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			if s, ok := item.(string); ok && k == "title" {
				out[k] = map[string]interface{}{"text": s}
				continue
			}
			out[k] = plotlyValue(item)
		}
		return out
	case models.Layout:
		return plotlyValue(map[string]interface{}(val))
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = plotlyValue(item)
		}
		return out
	case []float64:
		out := make([]interface{}, len(val))
		for i, f := range val {
			out[i] = plotlyValue(f)
		}
		return out
	case float64:
		if math.IsNaN(val) {
			return nil
		}
	}
	return v
}
