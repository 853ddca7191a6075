package sanitize

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// TraceSanitizer filters and repairs raw trace mappings.
type TraceSanitizer struct {
	logger zerolog.Logger
}

// NewTraceSanitizer creates a TraceSanitizer that logs dropped fields and
// applied fixups at debug level.
func NewTraceSanitizer(logger zerolog.Logger) *TraceSanitizer {
	return &TraceSanitizer{logger: logger}
}

// Trace sanitizes raw with a silent logger. See TraceSanitizer.Sanitize.
func Trace(raw map[string]interface{}) (models.Trace, error) {
	return NewTraceSanitizer(zerolog.Nop()).Sanitize(raw)
}

// Sanitize consumes the trace_type tag of raw, drops every field the type does
// not accept, strips empty substructures and applies type-specific fixups.
// raw is modified in place and becomes the returned trace's Fields.
func (s *TraceSanitizer) Sanitize(raw map[string]interface{}) (models.Trace, error) {
	tag, ok := raw[models.TypeField]
	if !ok {
		return models.Trace{}, fmt.Errorf("%w: %s", ErrMissingField, models.TypeField)
	}
	delete(raw, models.TypeField)

	tagStr, _ := tag.(string)
	tt, err := LookupTraceType(tagStr)
	if err != nil {
		return models.Trace{}, err
	}

	var dropped []string
	for k := range raw {
		if !IsAccepted(tt, k) {
			dropped = append(dropped, k)
			delete(raw, k)
		}
	}
	if len(dropped) > 0 {
		sort.Strings(dropped)
		s.logger.Debug().Str("trace_type", string(tt)).Strs("fields", dropped).Msg("dropped unsupported fields")
	}

	fields := RemoveEmptyKeys(raw)

	if err := s.fixup(tt, fields); err != nil {
		return models.Trace{}, err
	}

	return models.Trace{Type: tt, Fields: fields}, nil
}

func (s *TraceSanitizer) fixup(tt models.TraceType, fields map[string]interface{}) error {
	if tt == models.TracePie {
		if marker, ok := fields["marker"].(map[string]interface{}); ok {
			delete(marker, "opacity")
			delete(marker, "colorscale")
		}
	}

	if xs, ok := fields[FieldXStr]; ok {
		if tt == models.TraceBar {
			fields["x"] = xs
			s.logger.Debug().Msg("bar x replaced by x_str")
		}
		delete(fields, FieldXStr)
	}

	if tt == models.TraceScatter3D {
		z, ok := fields["z"]
		if !ok || z == nil {
			return fmt.Errorf("%w: z", ErrMissingField)
		}
		flat, err := Flatten(z)
		if err != nil {
			return fmt.Errorf("z: %w", err)
		}
		fields["z"] = flat
	}

	return nil
}
