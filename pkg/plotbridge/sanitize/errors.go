package sanitize

import "errors"

// ErrUnknownTraceType indicates a trace_type tag outside the supported set.
var ErrUnknownTraceType = errors.New("unknown trace type")

// ErrMissingField indicates a field required by a fixup is absent.
var ErrMissingField = errors.New("missing field")

// ErrInvalidField indicates a field whose value cannot be repaired.
var ErrInvalidField = errors.New("invalid field")
