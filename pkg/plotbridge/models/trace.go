// Package models defines data structures for figure assembly.
package models

// TraceType is the chart type tag carried by each input trace.
type TraceType string

const (
	TraceScatter   TraceType = "scatter"
	TracePie       TraceType = "pie"
	TraceHeatmap   TraceType = "heatmap"
	TraceSurface   TraceType = "surface"
	TraceScatter3D TraceType = "scatter3d"
	TraceBar       TraceType = "bar"
	TraceHistogram TraceType = "histogram"
)

// TraceTypes lists every supported trace type in declaration order.
var TraceTypes = []TraceType{
	TraceScatter,
	TracePie,
	TraceHeatmap,
	TraceSurface,
	TraceScatter3D,
	TraceBar,
	TraceHistogram,
}

// TypeField is the input field holding the trace type tag.
const TypeField = "trace_type"

// Trace represents one sanitized data series.
type Trace struct {
	// Type is the chart type consumed from the trace_type field.
	Type TraceType `json:"type"`
	// Fields maps plotly attribute names to values.
	Fields map[string]interface{} `json:"fields"`
}
