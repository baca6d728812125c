package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotIterable indicates the items argument cannot be iterated.
	ErrNotIterable = errors.New("not iterable")

	// ErrNullItem indicates an element of the input is a nil value.
	ErrNullItem = errors.New("null item")

	// ErrNonStringItem indicates an element of the input is not a string.
	ErrNonStringItem = errors.New("non-string item")

	// ErrSessionClosed indicates a match session was already committed or cancelled.
	ErrSessionClosed = errors.New("session closed")

	// ErrPickerUnavailable indicates interactive mode was requested without a picker.
	ErrPickerUnavailable = errors.New("interactive picker unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedEngine indicates an unknown fuzzy engine name.
	ErrUnsupportedEngine = errors.New("unsupported engine")
)

// ErrorKind classifies input normalization failures.
type ErrorKind int

// Normalization error kinds.
const (
	// KindNotIterable: the top-level items value is not a collection.
	KindNotIterable ErrorKind = iota + 1
	// KindNullItem: an element is nil.
	KindNullItem
	// KindNonStringItem: an element has a non-string type.
	KindNonStringItem
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNotIterable:
		return "NotIterable"
	case KindNullItem:
		return "NullItem"
	case KindNonStringItem:
		return "NonStringItem"
	default:
		return "Unknown"
	}
}

// NormalizeError reports why an input collection could not be turned into candidates.
type NormalizeError struct {
	// Kind is the failure class.
	Kind ErrorKind

	// TypeName is the runtime type name of the offending value,
	// e.g. "int", "[]int" or "<nil>".
	TypeName string

	// Position is the index of the offending element, or -1 for NotIterable.
	Position int
}

// NewNotIterableError creates a NormalizeError for a non-collection items value.
func NewNotIterableError(typeName string) *NormalizeError {
	return &NormalizeError{Kind: KindNotIterable, TypeName: typeName, Position: -1}
}

// NewNullItemError creates a NormalizeError for a nil element.
func NewNullItemError(typeName string, position int) *NormalizeError {
	return &NormalizeError{Kind: KindNullItem, TypeName: typeName, Position: position}
}

// NewNonStringItemError creates a NormalizeError for a non-string element.
func NewNonStringItemError(typeName string, position int) *NormalizeError {
	return &NormalizeError{Kind: KindNonStringItem, TypeName: typeName, Position: position}
}

func (e *NormalizeError) Error() string {
	if e.Kind == KindNotIterable {
		return fmt.Sprintf("'%s' object is not iterable", e.TypeName)
	}
	return fmt.Sprintf("'%s' object cannot be converted to string", e.TypeName)
}

// Is maps the error onto the sentinel for its kind.
func (e *NormalizeError) Is(target error) bool {
	switch e.Kind {
	case KindNotIterable:
		return target == ErrNotIterable
	case KindNullItem:
		return target == ErrNullItem
	case KindNonStringItem:
		return target == ErrNonStringItem
	default:
		return false
	}
}
