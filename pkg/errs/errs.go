// Package errs declares the error types returned by range resolution and
// strided assignment.
//
// Each kind of failure has its own type, so that callers can build accurate
// diagnostics with errors.As instead of matching on messages.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %v, but is %v",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %v",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %v",
			e.What, e.ValidLow, e.ValidHigh, nValues(e.Actual))
	}
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// ZeroStep is returned when the step of a slice resolves to zero.
type ZeroStep struct{}

// Error implements the error interface.
func (ZeroStep) Error() string { return "slice step cannot be zero" }

// MissingStep is returned when strided assignment is attempted with a slice
// that has no step.
type MissingStep struct{}

// Error implements the error interface.
func (MissingStep) Error() string { return "cannot do slice assignment w/ no step" }

// TooFewItems is returned when the source of a strided assignment has fewer
// elements than the number of positions the slice selects.
type TooFewItems struct {
	Want   int
	Actual int
}

// Error implements the error interface.
func (e TooFewItems) Error() string {
	return fmt.Sprintf("too few items in the enumerator. need %d have %d", e.Want, e.Actual)
}

// TooManyItems is returned when the source of a strided assignment has more
// elements than the number of positions the slice selects.
type TooManyItems struct {
	Want   int
	Actual int
}

// Error implements the error interface.
func (e TooManyItems) Error() string {
	return fmt.Sprintf("too many items in the enumerator need %d have %d", e.Want, e.Actual)
}

// BadIndex is returned when a value cannot be used as an integer index.
type BadIndex struct {
	Kind string
}

// Error implements the error interface.
func (e BadIndex) Error() string {
	return "slice indices must be integers or None, but is " + e.Kind
}

// Incomparable is returned when an ordering is requested between values that
// have none.
type Incomparable struct {
	Left  string
	Right string
}

// Error implements the error interface.
func (e Incomparable) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.Left, e.Right)
}

// Unhashable is returned when a value hash is requested for a value that does
// not support one.
type Unhashable struct {
	Kind string
}

// Error implements the error interface.
func (e Unhashable) Error() string { return "unhashable type: " + e.Kind }

// NoLength is returned when the length of a value is needed but the value does
// not have a well-defined length.
type NoLength struct {
	Kind string
}

// Error implements the error interface.
func (e NoLength) Error() string { return e.Kind + " has no length" }
