package slice

import (
	"math"

	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/vals"
)

// MaxStop is the stop FixLegacy returns for an absent stop. It means the slice
// is open-ended; callers do their own bounds checking.
const MaxStop = math.MaxInt

// FixLegacy resolves the start and stop of the slice for the deprecated
// two-index slicing protocol. The step is ignored.
//
// Unlike Indices, FixLegacy does not clamp: an absent start is 0, an absent
// stop is MaxStop, and a negative start or stop has the length added to it
// once, whatever the result. The length is only needed for negative
// components; length is called at most once, and its error is returned as is.
func (s Slice) FixLegacy(length func() (int, error)) (start, stop int, err error) {
	n := &lazyLen{get: length}
	start, err = fixLegacyBound(s.start, 0, n)
	if err != nil {
		return 0, 0, err
	}
	stop, err = fixLegacyBound(s.stop, MaxStop, n)
	if err != nil {
		return 0, 0, err
	}
	return start, stop, nil
}

func fixLegacyBound(o Opt, def int, n *lazyLen) (int, error) {
	v, ok := o.Get()
	if !ok {
		return def, nil
	}
	i, err := vals.ToIndex(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		length, err := n.value()
		if err != nil {
			return 0, err
		}
		i += length
	}
	return i, nil
}

// lazyLen calls get on first use and remembers the result. The length of a
// runtime value may be computed by user code, so computing it twice would be
// observable.
type lazyLen struct {
	get    func() (int, error)
	n      int
	called bool
}

func (l *lazyLen) value() (int, error) {
	if !l.called {
		l.called = true
		n, err := l.get()
		if err != nil {
			return 0, err
		}
		l.n = n
	}
	return l.n, nil
}

// LengthOf returns a length function for FixLegacy that reports the length of
// v, or errs.NoLength if v has no well-defined length.
func LengthOf(v any) func() (int, error) {
	return func() (int, error) {
		n := vals.Len(v)
		if n < 0 {
			return 0, errs.NoLength{Kind: vals.Kind(v)}
		}
		return n, nil
	}
}

// ClampLegacy clamps the start and stop returned by FixLegacy into
// [0, length], which is what the deprecated get and set paths do before
// touching the sequence.
func ClampLegacy(length, start, stop int) (int, int) {
	return clamp(start, 0, length), clamp(stop, 0, length)
}

func clamp(i, low, high int) int {
	switch {
	case i < low:
		return low
	case i > high:
		return high
	}
	return i
}
