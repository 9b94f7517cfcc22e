package guard

import "fmt"

// NoWhereError is returned when a builder is finalized without any
// filtering condition. Running such a statement would touch every row of
// the table, so finalization refuses it.
type NoWhereError struct {
	Kind Kind
}

// Error returns the error message for NoWhereError.
func (e *NoWhereError) Error() string {
	return fmt.Sprintf("%s built without a WHERE condition", e.Kind)
}

// NoSetError is returned when an update builder is finalized without any
// assignment. There would be nothing to write.
type NoSetError struct{}

// Error returns the error message for NoSetError.
func (e *NoSetError) Error() string {
	return "update built without a SET assignment"
}

// AlreadyBuiltError is returned when a builder is finalized twice.
// Finalization consumes the builder; a consumed builder cannot be reused.
type AlreadyBuiltError struct {
	Kind Kind
}

// Error returns the error message for AlreadyBuiltError.
func (e *AlreadyBuiltError) Error() string {
	return fmt.Sprintf("%s builder already finalized", e.Kind)
}
