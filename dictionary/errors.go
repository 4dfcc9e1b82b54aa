package dictionary

import (
	"errors"
	"fmt"
)

// Sentinel error kinds every dictionary-parsing failure wraps (§4.1).
var (
	// ErrIO marks a file access failure (missing/unreadable dictionary).
	ErrIO = errors.New("dictionary: io error")

	// ErrXML marks malformed XML.
	ErrXML = errors.New("dictionary: xml error")

	// ErrSchema marks a structurally valid but semantically invalid
	// dictionary: unknown type, duplicate tag, missing required
	// attribute, enum value on a non-enumerable wire type, or a
	// reference to an undefined symbol.
	ErrSchema = errors.New("dictionary: schema error")
)

// ParseError carries the source path alongside one of the sentinel
// kinds above, so every error surfaced by this package identifies which
// dictionary file it came from (§4.1: "All errors carry the source
// path").
type ParseError struct {
	Path  string
	Kind  error
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func ioErrorf(path string, format string, args ...interface{}) error {
	return &ParseError{Path: path, Kind: ErrIO, Cause: fmt.Errorf(format, args...)}
}

func xmlErrorf(path string, format string, args ...interface{}) error {
	return &ParseError{Path: path, Kind: ErrXML, Cause: fmt.Errorf(format, args...)}
}

func schemaErrorf(path string, format string, args ...interface{}) error {
	return &ParseError{Path: path, Kind: ErrSchema, Cause: fmt.Errorf(format, args...)}
}
