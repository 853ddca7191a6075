package plotbridge

import (
	"errors"
	"fmt"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMalformedJSON indicates an input file is not valid JSON of the expected shape.
var ErrMalformedJSON = errors.New("malformed JSON")

// ErrInvalidMode indicates an unknown output mode.
var ErrInvalidMode = errors.New("invalid mode")

// TraceError represents an error while preparing one trace.
type TraceError struct {
	Index int
	Type  models.TraceType // empty when the tag itself is invalid
	Err   error
}

func (e *TraceError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("trace %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("trace %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *TraceError) Unwrap() error {
	return e.Err
}

// NewTraceError creates a new TraceError.
func NewTraceError(index int, tt models.TraceType, err error) *TraceError {
	return &TraceError{
		Index: index,
		Type:  tt,
		Err:   err,
	}
}
