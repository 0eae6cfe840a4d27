package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a single validation failure.
type ErrorKind string

const (
	// MissingRequiredField reports a required field that is absent.
	MissingRequiredField ErrorKind = "MISSING_REQUIRED_FIELD"
	// TypeMismatch reports a value of an incompatible shape.
	TypeMismatch ErrorKind = "TYPE_MISMATCH"
	// RangeViolation reports a numeric value outside its declared bounds.
	RangeViolation ErrorKind = "RANGE_VIOLATION"
	// LengthViolation reports a string or list length outside its bounds.
	LengthViolation ErrorKind = "LENGTH_VIOLATION"
	// PatternViolation reports a string that fails its anchored pattern.
	PatternViolation ErrorKind = "PATTERN_VIOLATION"
	// EnumViolation reports a value outside the declared token set.
	EnumViolation ErrorKind = "ENUM_VIOLATION"
	// UnknownField reports an undeclared field outside the Payload hatch.
	UnknownField ErrorKind = "UNKNOWN_FIELD"
)

// FieldError is a single validation failure: the dotted field path from the
// entity root, the violated constraint kind, and the offending value
// (nil when the field was absent).
type FieldError struct {
	Path  string    `json:"path"`
	Kind  ErrorKind `json:"kind"`
	Value any       `json:"value"`
}

func (e FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Kind, e.Value)
}

// ValidationErrors is the batch of failures found in one validation pass.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}
