package qbgen

import (
	"fmt"

	"github.com/guardql/guardql/guard"
)

// UnknownOpError is returned when a field annotation names an operation
// that is not in the catalog. Generation for the entity fails entirely.
type UnknownOpError struct {
	Entity string
	Field  string
	Name   string
}

// Error returns the error message for UnknownOpError.
func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown operation %q on %s.%s", e.Name, e.Entity, e.Field)
}

// UnorderedTypeError is returned when an annotation requests an ordering
// operation (lt, lte, gt, gte, between) on a field type without a total
// order.
type UnorderedTypeError struct {
	Entity string
	Field  string
	Op     guard.Op
	Type   FieldType
}

// Error returns the error message for UnorderedTypeError.
func (e *UnorderedTypeError) Error() string {
	return fmt.Sprintf("operation %q on %s.%s requires an ordered type, got %s",
		e.Op, e.Entity, e.Field, e.Type)
}

// TextOpError is returned when an annotation requests a pattern operation
// (like, ilike) on a non-text field type.
type TextOpError struct {
	Entity string
	Field  string
	Op     guard.Op
	Type   FieldType
}

// Error returns the error message for TextOpError.
func (e *TextOpError) Error() string {
	return fmt.Sprintf("operation %q on %s.%s requires a text type, got %s",
		e.Op, e.Entity, e.Field, e.Type)
}

// UnknownTypeError is returned when a field declares a value type the
// generator does not support.
type UnknownTypeError struct {
	Entity string
	Field  string
	Name   string
}

// Error returns the error message for UnknownTypeError.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown field type %q on %s.%s", e.Name, e.Entity, e.Field)
}
