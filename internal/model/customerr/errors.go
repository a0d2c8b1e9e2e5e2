package customerr

import "fmt"

// ValidationError is returned when a record is rejected before it is written.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be a non-negative number", e.Field, e.Value)
}

// ParseError is returned when a stored row cannot be read back.
// Line is the 1-based line of the ledger file, the header being line 1.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ledger line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError is returned when a deletion position is outside [1, Max).
type RangeError struct {
	Position int
	Max      int
}

func (e *RangeError) Error() string {
	if e.Max <= 1 {
		return fmt.Sprintf("position %d out of range: ledger is empty", e.Position)
	}
	return fmt.Sprintf("position %d out of range [1, %d]", e.Position, e.Max-1)
}

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
