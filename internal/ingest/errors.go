package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReport matches every *ValidationError via errors.Is.
var ErrInvalidReport = errors.New("invalid match report")

// Kind classifies a single violation.
type Kind string

const (
	KindMalformedPayload  Kind = "malformed_payload"
	KindMissingField      Kind = "missing_field"
	KindInvalidType       Kind = "invalid_type"
	KindUnrecognizedValue Kind = "unrecognized_value"
	KindInvalidValue      Kind = "invalid_value"
)

// Violation points at one offending field. Path uses dotted/indexed notation,
// e.g. events[2].event_type.
type Violation struct {
	Path   string `json:"path"`
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
	if v.Detail == "" {
		return fmt.Sprintf("%s: %s", v.Path, v.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Kind, v.Detail)
}

// ValidationError aggregates every violation found in one payload.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return ErrInvalidReport.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidReport, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidReport
}

// Has reports whether any violation of kind exists at path. An empty path
// matches any path.
func (e *ValidationError) Has(kind Kind, path string) bool {
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if v.Kind == kind && (path == "" || v.Path == path) {
			return true
		}
	}
	return false
}
