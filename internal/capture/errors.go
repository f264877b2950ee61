package capture

import "fmt"

// HeaderError reports a metadata line that does not have the expected shape.
type HeaderError struct {
	Line  int
	Field string
	Err   error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

// RowError reports a sweep line that cannot be converted.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sweep line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
