// Package slice implements slice values of the runtime: (start, stop, step)
// triples whose components may each be absent, together with the algorithms
// that resolve them against concrete lengths and use them for strided
// assignment.
//
// Components are stored as opaque values and only converted to integers (with
// vals.ToIndex) when a slice is resolved, compared or rendered, so a slice can
// be built from any values and fail at the point of use.
package slice

import (
	"src.strided.sh/pkg/errs"
)

// Opt is one optional component of a slice. The zero value is absent.
type Opt struct {
	v  any
	ok bool
}

// None is the absent component. It is distinct from every present component,
// including Some(0) and Some(nil).
var None = Opt{}

// Some returns a present component holding v.
func Some(v any) Opt { return Opt{v, true} }

// Get returns the value of the component, and whether it is present.
func (o Opt) Get() (any, bool) { return o.v, o.ok }

// IsNone returns whether the component is absent.
func (o Opt) IsNone() bool { return !o.ok }

// Slice is an immutable (start, stop, step) triple. The zero value has all
// three components absent.
type Slice struct {
	start, stop, step Opt
}

// Upto returns a slice with only the stop component.
func Upto(stop Opt) Slice { return Slice{stop: stop} }

// Span returns a slice with the start and stop components.
func Span(start, stop Opt) Slice { return Slice{start: start, stop: stop} }

// New returns a slice with all three components.
func New(start, stop, step Opt) Slice { return Slice{start, stop, step} }

// Of builds a slice the way the runtime's slice builtin does: with one
// argument it is the stop, with two the start and stop, and with three the
// start, stop and step. Nil arguments are absent.
func Of(args ...any) (Slice, error) {
	switch len(args) {
	case 1:
		return Upto(optOf(args[0])), nil
	case 2:
		return Span(optOf(args[0]), optOf(args[1])), nil
	case 3:
		return New(optOf(args[0]), optOf(args[1]), optOf(args[2])), nil
	}
	return Slice{}, errs.ArityMismatch{
		What: "arguments to slice", ValidLow: 1, ValidHigh: 3, Actual: len(args)}
}

func optOf(v any) Opt {
	if v == nil {
		return None
	}
	return Some(v)
}

// Start returns the start component.
func (s Slice) Start() Opt { return s.start }

// Stop returns the stop component.
func (s Slice) Stop() Opt { return s.stop }

// Step returns the step component.
func (s Slice) Step() Opt { return s.step }

// Kind returns "slice".
func (Slice) Kind() string { return "slice" }
