package sanitize

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

func TestTrace(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]interface{}
		wantErr error
		verify  func(t *testing.T, tr models.Trace)
	}{
		{
			name: "scatter keeps accepted fields",
			input: map[string]interface{}{
				"trace_type": "scatter",
				"x":          []interface{}{1.0, 2.0},
				"y":          []interface{}{3.0, 4.0},
				"mode":       "lines",
				"labels":     []interface{}{"a"},
				"bogus":      1.0,
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, models.TraceScatter, tr.Type)
				assert.Equal(t, map[string]interface{}{
					"x":    []interface{}{1.0, 2.0},
					"y":    []interface{}{3.0, 4.0},
					"mode": "lines",
				}, tr.Fields)
			},
		},
		{
			name: "bar x_str replaces x",
			input: map[string]interface{}{
				"trace_type": "bar",
				"x":          []interface{}{1.0, 2.0},
				"x_str":      []interface{}{"a", "b"},
				"y":          []interface{}{5.0, 6.0},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, []interface{}{"a", "b"}, tr.Fields["x"])
				assert.NotContains(t, tr.Fields, "x_str")
			},
		},
		{
			name: "scatter x_str removed without copy",
			input: map[string]interface{}{
				"trace_type": "scatter",
				"x":          []interface{}{1.0, 2.0},
				"x_str":      []interface{}{"a", "b"},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, []interface{}{1.0, 2.0}, tr.Fields["x"])
				assert.NotContains(t, tr.Fields, "x_str")
			},
		},
		{
			name: "empty x_str is stripped before the bar fixup",
			input: map[string]interface{}{
				"trace_type": "bar",
				"x":          []interface{}{1.0},
				"x_str":      []interface{}{},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, []interface{}{1.0}, tr.Fields["x"])
				assert.NotContains(t, tr.Fields, "x_str")
			},
		},
		{
			name: "scatter3d z flattened",
			input: map[string]interface{}{
				"trace_type": "scatter3d",
				"x":          []interface{}{1.0, 2.0, 3.0, 4.0},
				"z": []interface{}{
					[]interface{}{1.0, 2.0},
					[]interface{}{3.0, 4.0},
				},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, []float64{1, 2, 3, 4}, tr.Fields["z"])
			},
		},
		{
			name: "scatter3d z gaps kept",
			input: map[string]interface{}{
				"trace_type": "scatter3d",
				"z":          []interface{}{[]interface{}{1.0, nil}},
			},
			verify: func(t *testing.T, tr models.Trace) {
				z := tr.Fields["z"].([]float64)
				require.Len(t, z, 2)
				assert.Equal(t, 1.0, z[0])
				assert.True(t, math.IsNaN(z[1]))
			},
		},
		{
			name: "pie marker fields removed",
			input: map[string]interface{}{
				"trace_type": "pie",
				"labels":     []interface{}{"a", "b"},
				"values":     []interface{}{1.0, 2.0},
				"marker": map[string]interface{}{
					"colors":     []interface{}{"red", "blue"},
					"opacity":    0.5,
					"colorscale": "Viridis",
				},
			},
			verify: func(t *testing.T, tr models.Trace) {
				marker := tr.Fields["marker"].(map[string]interface{})
				assert.NotContains(t, marker, "opacity")
				assert.NotContains(t, marker, "colorscale")
				assert.Equal(t, []interface{}{"red", "blue"}, marker["colors"])
			},
		},
		{
			name: "pie marker without opacity or colorscale",
			input: map[string]interface{}{
				"trace_type": "pie",
				"values":     []interface{}{1.0},
				"marker":     map[string]interface{}{"colors": []interface{}{"red"}},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, map[string]interface{}{"colors": []interface{}{"red"}}, tr.Fields["marker"])
			},
		},
		{
			name: "heatmap keeps colorscale",
			input: map[string]interface{}{
				"trace_type": "heatmap",
				"z":          []interface{}{[]interface{}{1.0}},
				"colorscale": "Viridis",
				"mode":       "markers",
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, models.TraceHeatmap, tr.Type)
				assert.Equal(t, "Viridis", tr.Fields["colorscale"])
				assert.NotContains(t, tr.Fields, "mode")
			},
		},
		{
			name: "plotly type field is not accepted",
			input: map[string]interface{}{
				"trace_type": "histogram",
				"type":       "bar",
				"x":          []interface{}{1.0},
			},
			verify: func(t *testing.T, tr models.Trace) {
				assert.Equal(t, models.TraceHistogram, tr.Type)
				assert.NotContains(t, tr.Fields, "type")
			},
		},
		{
			name:    "unknown trace type",
			input:   map[string]interface{}{"trace_type": "violin"},
			wantErr: ErrUnknownTraceType,
		},
		{
			name:    "non-string trace type",
			input:   map[string]interface{}{"trace_type": 3.0},
			wantErr: ErrUnknownTraceType,
		},
		{
			name:    "missing trace type",
			input:   map[string]interface{}{"x": []interface{}{1.0}},
			wantErr: ErrMissingField,
		},
		{
			name:    "scatter3d without z",
			input:   map[string]interface{}{"trace_type": "scatter3d", "z": []interface{}{}},
			wantErr: ErrMissingField,
		},
		{
			name:    "scatter3d with null z",
			input:   map[string]interface{}{"trace_type": "scatter3d", "z": nil},
			wantErr: ErrMissingField,
		},
		{
			name: "scatter3d with non-numeric z",
			input: map[string]interface{}{
				"trace_type": "scatter3d",
				"z":          []interface{}{[]interface{}{"a"}},
			},
			wantErr: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Trace(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, tr.Fields, models.TypeField)
			tt.verify(t, tr)
		})
	}
}

func TestTraceSanitizerLogsDroppedFields(t *testing.T) {
	var buf bytes.Buffer
	s := NewTraceSanitizer(zerolog.New(&buf).Level(zerolog.DebugLevel))

	_, err := s.Sanitize(map[string]interface{}{
		"trace_type": "scatter",
		"zz":         1.0,
		"aa":         2.0,
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"fields":["aa","zz"]`)
	assert.Contains(t, buf.String(), `"trace_type":"scatter"`)
}

func TestLookupTraceType(t *testing.T) {
	for _, tt := range models.TraceTypes {
		got, err := LookupTraceType(string(tt))
		require.NoError(t, err)
		assert.Equal(t, tt, got)
		assert.True(t, IsAccepted(tt, FieldXStr), "%s must accept x_str", tt)
	}

	_, err := LookupTraceType("Scatter")
	assert.ErrorIs(t, err, ErrUnknownTraceType)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected []float64
	}{
		{[]interface{}{[]interface{}{1.0, 2.0}, []interface{}{3.0, 4.0}}, []float64{1, 2, 3, 4}},
		{[]interface{}{1.0, []interface{}{2.0, []interface{}{3.0}}}, []float64{1, 2, 3}},
		{[]interface{}{}, []float64{}},
		{5.0, []float64{5}},
		{[]float64{1, 2}, []float64{1, 2}},
	}

	for _, tt := range tests {
		got, err := Flatten(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "Flatten(%v)", tt.input)
	}

	got, err := Flatten([]interface{}{[]interface{}{1.0, nil}, []interface{}{3.0}})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 3.0, got[2])

	_, err = Flatten([]interface{}{1.0, "a"})
	assert.ErrorIs(t, err, ErrInvalidField)
}
