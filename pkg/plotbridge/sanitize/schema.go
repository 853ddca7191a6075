// Package sanitize repairs trace and layout mappings so the plotly object
// model accepts them.
package sanitize

import (
	"fmt"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// FieldXStr carries string-valued x data for bar charts.
const FieldXStr = "x_str"

// CustomFields are accepted on every trace type in addition to the schema.
var CustomFields = []string{FieldXStr}

// commonFields are attributes shared by every plotly trace type.
var commonFields = []string{
	"name", "visible", "showlegend", "legend", "legendgroup", "legendgrouptitle",
	"legendrank", "legendwidth", "opacity", "ids", "customdata", "meta",
	"hoverinfo", "hoverlabel", "hovertemplate", "hovertext", "text",
	"texttemplate", "textposition", "textfont", "uid", "uirevision", "stream",
}

// cartesianFields are attributes of traces drawn on 2D cartesian axes.
var cartesianFields = []string{
	"x", "y", "x0", "y0", "dx", "dy", "xaxis", "yaxis",
	"xcalendar", "ycalendar", "xhoverformat", "yhoverformat",
	"xperiod", "yperiod", "xperiod0", "yperiod0",
	"xperiodalignment", "yperiodalignment", "selectedpoints",
}

// colorscaleFields are attributes of traces mapping z values to colors.
var colorscaleFields = []string{
	"colorscale", "autocolorscale", "reversescale", "showscale", "colorbar", "coloraxis",
}

// traceFields lists the plotly attributes of each trace type, maintained
// alongside the plotly.js schema.
var traceFields = map[models.TraceType][]string{
	models.TraceScatter: join(commonFields, cartesianFields, []string{
		"mode", "line", "marker", "fill", "fillcolor", "fillpattern",
		"connectgaps", "error_x", "error_y", "orientation", "stackgroup",
		"stackgaps", "groupnorm", "cliponaxis", "hoveron", "selected",
		"unselected", "alignmentgroup", "offsetgroup",
	}),
	models.TracePie: join(commonFields, []string{
		"labels", "values", "label0", "dlabel", "domain", "hole", "pull",
		"rotation", "direction", "sort", "marker", "textinfo", "title",
		"insidetextfont", "outsidetextfont", "insidetextorientation",
		"automargin", "scalegroup",
	}),
	models.TraceHeatmap: join(commonFields, cartesianFields, colorscaleFields, []string{
		"z", "xtype", "ytype", "xgap", "ygap", "zmin", "zmax", "zmid", "zauto",
		"zsmooth", "zhoverformat", "connectgaps", "transpose", "hoverongaps",
	}),
	models.TraceSurface: join(commonFields, colorscaleFields, []string{
		"x", "y", "z", "surfacecolor", "cmin", "cmax", "cmid", "cauto",
		"contours", "hidesurface", "lighting", "lightposition", "opacityscale",
		"scene", "connectgaps", "xcalendar", "ycalendar", "zcalendar",
		"xhoverformat", "yhoverformat", "zhoverformat",
	}),
	models.TraceScatter3D: join(commonFields, []string{
		"x", "y", "z", "mode", "line", "marker", "error_x", "error_y", "error_z",
		"projection", "scene", "surfaceaxis", "surfacecolor", "connectgaps",
		"xcalendar", "ycalendar", "zcalendar",
		"xhoverformat", "yhoverformat", "zhoverformat",
	}),
	models.TraceBar: join(commonFields, cartesianFields, []string{
		"orientation", "base", "offset", "width", "marker", "error_x", "error_y",
		"textangle", "insidetextanchor", "insidetextfont", "outsidetextfont",
		"constraintext", "cliponaxis", "offsetgroup", "alignmentgroup",
		"selected", "unselected",
	}),
	models.TraceHistogram: join(commonFields, []string{
		"x", "y", "xaxis", "yaxis", "orientation", "histfunc", "histnorm",
		"nbinsx", "nbinsy", "xbins", "ybins", "autobinx", "autobiny",
		"bingroup", "cumulative", "marker", "error_x", "error_y",
		"offsetgroup", "alignmentgroup", "selected", "unselected",
		"textangle", "insidetextanchor", "insidetextfont", "outsidetextfont",
		"constraintext", "xcalendar", "ycalendar", "xhoverformat", "yhoverformat",
	}),
}

// AcceptedFields maps each trace type to the set of fields kept by Trace.
var AcceptedFields = buildAccepted()

func buildAccepted() map[models.TraceType]map[string]struct{} {
	result := make(map[models.TraceType]map[string]struct{}, len(traceFields))
	for tt, fields := range traceFields {
		set := make(map[string]struct{}, len(fields)+len(CustomFields))
		for _, f := range fields {
			set[f] = struct{}{}
		}
		for _, f := range CustomFields {
			set[f] = struct{}{}
		}
		result[tt] = set
	}
	return result
}

// LookupTraceType validates a trace_type tag.
func LookupTraceType(tag string) (models.TraceType, error) {
	tt := models.TraceType(tag)
	if _, ok := AcceptedFields[tt]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTraceType, tag)
	}
	return tt, nil
}

// IsAccepted reports whether field is kept for traces of type tt.
func IsAccepted(tt models.TraceType, field string) bool {
	_, ok := AcceptedFields[tt][field]
	return ok
}

func join(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
