package scene

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal scene errors.
type ErrorKind uint8

const (
	// A required block or required child tag is absent.
	StructuralError ErrorKind = iota

	// A duplicate id or a reference that does not resolve.
	ReferenceError

	// A required attribute is missing, malformed or outside its domain.
	ValueError
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralError:
		return "structural error"
	case ReferenceError:
		return "reference error"
	}
	return "value error"
}

// Error is a fatal scene error. Compilation and linking stop at the first
// Error that is encountered.
type Error struct {
	Kind ErrorKind

	// The document block (e.g. "lights") where the error was detected.
	Block string

	// The id of the offending entity, if known.
	ID string

	// The offending attribute or child tag, if any.
	Field string

	Msg string
}

func (e *Error) Error() string {
	where := e.Block
	if e.ID != "" {
		where = fmt.Sprintf("%s %q", where, e.ID)
	}
	if where == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, where, e.Msg)
}

// Create a StructuralError.
func Structural(block, id, format string, args ...interface{}) *Error {
	return &Error{Kind: StructuralError, Block: block, ID: id, Msg: fmt.Sprintf(format, args...)}
}

// Create a ReferenceError.
func Reference(block, id, format string, args ...interface{}) *Error {
	return &Error{Kind: ReferenceError, Block: block, ID: id, Msg: fmt.Sprintf(format, args...)}
}

// Create a ValueError for a particular field.
func Value(block, id, field, format string, args ...interface{}) *Error {
	return &Error{Kind: ValueError, Block: block, ID: id, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Returns true if err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var sErr *Error
	return errors.As(err, &sErr) && sErr.Kind == kind
}

func IsStructural(err error) bool { return IsKind(err, StructuralError) }
func IsReference(err error) bool  { return IsKind(err, ReferenceError) }
func IsValue(err error) bool      { return IsKind(err, ValueError) }

// Warning is a non-fatal schema problem. Warnings never abort compilation;
// the compiler substitutes a documented fallback and carries on.
type Warning struct {
	Block string
	ID    string
	Msg   string
}

func (w Warning) String() string {
	if w.ID != "" {
		return fmt.Sprintf("%s %q: %s", w.Block, w.ID, w.Msg)
	}
	if w.Block != "" {
		return fmt.Sprintf("%s: %s", w.Block, w.Msg)
	}
	return w.Msg
}
