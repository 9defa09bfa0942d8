package slice

import (
	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/vals"
)

var (
	_ vals.Equaler  = Slice{}
	_ vals.Comparer = Slice{}
	_ vals.Hasher   = Slice{}
)

// Equal returns whether other is a slice whose components are all equal to
// those of s, which is exactly when Cmp returns vals.CmpEqual. An absent
// component is only equal to another absent component.
func (s Slice) Equal(other any) bool {
	o, ok := other.(Slice)
	if !ok {
		return false
	}
	return equalOpt(s.start, o.start) && equalOpt(s.stop, o.stop) && equalOpt(s.step, o.step)
}

// Cmp compares s with another slice, lexicographically by (start, stop, step).
// At each position, an absent component sorts before any present one. It
// returns errs.Incomparable if other is not a slice, or if two present
// components have no ordering.
func (s Slice) Cmp(other any) (vals.Ordering, error) {
	o, ok := other.(Slice)
	if !ok {
		return vals.CmpUncomparable, errs.Incomparable{Left: "slice", Right: vals.Kind(other)}
	}
	for _, pair := range [3][2]Opt{{s.start, o.start}, {s.stop, o.stop}, {s.step, o.step}} {
		ord, err := cmpOpt(pair[0], pair[1])
		if err != nil {
			return vals.CmpUncomparable, err
		}
		if ord != vals.CmpEqual {
			return ord, nil
		}
	}
	return vals.CmpEqual, nil
}

// Less returns whether s sorts before other. Slices with incomparable
// components are not less than each other.
func (s Slice) Less(other Slice) bool {
	o, err := s.Cmp(other)
	return err == nil && o == vals.CmpLess
}

// Hash always fails: slices have value equality but can't be used as keys.
func (s Slice) Hash() (uint32, error) {
	return 0, vals.Unhashable(s)
}

// equalOpt agrees with cmpOpt, so that Equal and Cmp never disagree.
func equalOpt(a, b Opt) bool {
	o, err := cmpOpt(a, b)
	return err == nil && o == vals.CmpEqual
}

func cmpOpt(a, b Opt) (vals.Ordering, error) {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return vals.CmpEqual, nil
	case !aok:
		return vals.CmpLess, nil
	case !bok:
		return vals.CmpMore, nil
	}
	if i, j, ok := bothIndices(av, bv); ok {
		switch {
		case i < j:
			return vals.CmpLess, nil
		case i > j:
			return vals.CmpMore, nil
		}
		return vals.CmpEqual, nil
	}
	if o := vals.Cmp(av, bv); o != vals.CmpUncomparable {
		return o, nil
	}
	return vals.CmpUncomparable, errs.Incomparable{Left: vals.Kind(av), Right: vals.Kind(bv)}
}

func bothIndices(a, b any) (int, int, bool) {
	i, err := vals.ToIndex(a)
	if err != nil {
		return 0, 0, false
	}
	j, err := vals.ToIndex(b)
	if err != nil {
		return 0, 0, false
	}
	return i, j, true
}
