package radarview

import (
	"errors"
	"fmt"
)

var (
	ErrAxisCount  = errors.New("radarview: axis count must be at least 3")
	ErrLabelCount = errors.New("radarview: label count does not match axis count")
	ErrValueCount = errors.New("radarview: value count does not match axis count")
	ErrValueRange = errors.New("radarview: value outside [0, 1]")

	ErrUnknownEvent = errors.New("radarview: unknown trace event")
	ErrBadArguments = errors.New("radarview: bad trace event arguments")
)

// ConfigurationError reports a chart configuration rejected at construction.
type ConfigurationError struct {
	Field string // "axisCount", "labels", "values"
	Index int    // offending element for per-value errors, -1 otherwise
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid configuration (%s[%d]): %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid configuration (%s): %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TraceError reports a malformed line in a gesture trace.
type TraceError struct {
	Line int
	Err  error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("trace line %d: %v", e.Line, e.Err)
}

func (e *TraceError) Unwrap() error {
	return e.Err
}
