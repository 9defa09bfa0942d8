package slice

import (
	"strings"

	"src.strided.sh/pkg/vals"
)

// Repr returns the representation of the slice, like slice(1, None, 2).
func (s Slice) Repr() string { return s.ReprWith(vals.Repr) }

// String is the same as Repr.
func (s Slice) String() string { return s.Repr() }

// ReprWith is like Repr, but renders present components with f. Absent
// components are always rendered as None.
func (s Slice) ReprWith(f func(any) string) string {
	var sb strings.Builder
	sb.WriteString("slice(")
	for i, o := range [3]Opt{s.start, s.stop, s.step} {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v, ok := o.Get(); ok {
			sb.WriteString(f(v))
		} else {
			sb.WriteString(vals.NoneRepr)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
