// Package errors defines the error types shared across the pipeline:
// document decoding failures and validation rule violations.
package errors

import (
	"fmt"
	"strings"
)

// ParseError reports that a configuration document could not be decoded.
// Line is 1-based and zero when the position is unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError wraps a decoder error with document position metadata.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	cause := "invalid document"
	if e.Err != nil {
		cause = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("cannot parse %s (line %d): %s", e.Path, e.Line, cause)
	}
	return fmt.Sprintf("cannot parse %s: %s", e.Path, cause)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Violation records a single broken validation rule. FieldPath uses the
// document's JSON naming, e.g. "branding.logoUrl" or "starterPrompts[2]".
type Violation struct {
	FieldPath string `json:"fieldPath"`
	Rule      string `json:"rule"`
	Message   string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s]", v.FieldPath, v.Message, v.Rule)
}

// ValidationError carries the complete, ordered list of rule violations found
// in a configuration document. The validator never stops at the first broken
// rule, so callers can surface every problem in one pass.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError constructs a ValidationError from an ordered violation list.
func NewValidationError(violations []Violation) error {
	return &ValidationError{Violations: violations}
}

// NewFieldViolation constructs a ValidationError holding a single violation.
func NewFieldViolation(fieldPath, rule, message string) error {
	return &ValidationError{Violations: []Violation{{FieldPath: fieldPath, Rule: rule, Message: message}}}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "validation error"
	}
	if len(e.Violations) == 1 {
		return fmt.Sprintf("validation error: %s", e.Violations[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "validation error: %d rules violated:", len(e.Violations))
	for _, v := range e.Violations {
		sb.WriteString("\n  - ")
		sb.WriteString(v.String())
	}
	return sb.String()
}

// HasField reports whether any violation targets the given field path.
func (e *ValidationError) HasField(fieldPath string) bool {
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if v.FieldPath == fieldPath {
			return true
		}
	}
	return false
}
