// Package fix is the runtime trait surface consumed by FIX messages
// generated from a dictionary by the codegen package. It has no
// dependency on codegen or dictionary: generated code imports fix, never
// the other way around.
package fix

import (
	"errors"
	"fmt"
)

// Sentinel error kinds a caller can match with errors.Is.
var (
	// ErrInvalidData is returned when a field payload cannot be parsed
	// into its typed value, or an enumerated field's payload does not
	// match any declared wire value.
	ErrInvalidData = errors.New("fix: invalid data")

	// ErrInvalidString is returned when a field payload is not valid
	// UTF-8 where text was expected.
	ErrInvalidString = errors.New("fix: invalid string")

	// ErrInvalidKey is the error kind for a tag that does not parse as a
	// non-negative integer. No function in this package returns it:
	// Split drops such segments silently.
	ErrInvalidKey = errors.New("fix: invalid key")

	// ErrInvalidKeyID is the error kind for a value decoded under a tag
	// other than the one a field codec owns. No function in this package
	// returns it: FieldCodec.Decode receives only the payload, not a tag.
	ErrInvalidKeyID = errors.New("fix: invalid key id")
)

// FieldError wraps a decode failure for a single tag with the tag number
// and the raw payload that failed to parse, so callers of a
// MessageCodec's Decode can report which tag was at fault.
type FieldError struct {
	Tag     int
	Payload string
	Kind    error // one of the Err* sentinels above
	Cause   error
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fix: tag %d (%q): %v: %v", e.Tag, e.Payload, e.Kind, e.Cause)
	}
	return fmt.Sprintf("fix: tag %d (%q): %v", e.Tag, e.Payload, e.Kind)
}

func (e *FieldError) Unwrap() error { return e.Kind }

// FixParseError is returned by a MessageCodec's Decode. It accumulates
// every field-level failure encountered while assembling the record,
// mirroring the way a dictionary's generated decoder keeps pulling
// fields out of the tag map instead of aborting on the first miss
// (§4.3.4 is permissive on unknown tags, strict on missing required
// ones — every missing-required tag becomes one entry here).
type FixParseError struct {
	Message string
	Errors  []*FieldError
}

func (e *FixParseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("fix: failed to decode %s", e.Message)
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("fix: failed to decode %s: %v", e.Message, e.Errors[0])
	}
	return fmt.Sprintf("fix: failed to decode %s: %d errors (first: %v)", e.Message, len(e.Errors), e.Errors[0])
}

func (e *FixParseError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}

// NewFixParseError builds a FixParseError for the named message type.
func NewFixParseError(message string) *FixParseError {
	return &FixParseError{Message: message}
}

// Add records a field-level failure against the error, returning the
// receiver so callers can chain it inline in a decode function.
func (e *FixParseError) Add(fe *FieldError) *FixParseError {
	e.Errors = append(e.Errors, fe)
	return e
}

// HasErrors reports whether any field-level failure was recorded.
func (e *FixParseError) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// OrNil returns e if it holds at least one error, else nil — lets a
// generated Decode method return `return decodeErr.OrNil()` unconditionally.
func (e *FixParseError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
