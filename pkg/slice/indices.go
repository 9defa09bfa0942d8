package slice

import (
	"math"
	"strconv"

	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/vals"
)

// Range is a slice resolved against a concrete length. Positions
// Start, Start+Step, ..., Start+(Count-1)*Step are all within [0, length).
type Range struct {
	Start, Stop, Step, Count int
}

// Index returns the i-th position of the range.
func (r Range) Index(i int) int { return r.Start + i*r.Step }

// Each calls f with each index and position of the range in order, stopping
// early if f returns false.
func (r Range) Each(f func(i, pos int) bool) {
	for i := 0; i < r.Count; i++ {
		if !f(i, r.Index(i)) {
			return
		}
	}
}

// Positions returns all the positions of the range.
func (r Range) Positions() []int {
	ps := make([]int, 0, r.Count)
	r.Each(func(_, pos int) bool {
		ps = append(ps, pos)
		return true
	})
	return ps
}

// Indices resolves the slice against a sequence of the given length, which
// must not be negative.
//
// An absent step is 1. Negative start and stop are counted from the end.
// Absent start and stop default to the ends of the sequence in the direction
// of the step, and present ones are clamped to [0, length] when stepping
// forward or [-1, length-1] when stepping backward.
func (s Slice) Indices(length int) (Range, error) {
	step := 1
	if v, ok := s.step.Get(); ok {
		i, err := vals.ToIndex(v)
		if err != nil {
			return Range{}, err
		}
		if i == 0 {
			return Range{}, errs.ZeroStep{}
		}
		step = i
	}

	var low, high, defStart, defStop int
	if step > 0 {
		low, high, defStart, defStop = 0, length, 0, length
	} else {
		low, high, defStart, defStop = -1, length-1, length-1, -1
	}
	start, err := fixBound(s.start, length, low, high, defStart)
	if err != nil {
		return Range{}, err
	}
	stop, err := fixBound(s.stop, length, low, high, defStop)
	if err != nil {
		return Range{}, err
	}

	var count int
	if step > 0 {
		count = ceilDiv(stop-start, step)
	} else {
		count = ceilDiv(start-stop, step)
	}
	return Range{start, stop, step, count}, nil
}

// IndicesOf is like Indices, but takes the length as a value of the runtime.
func (s Slice) IndicesOf(length any) (Range, error) {
	n, err := vals.ToIndex(length)
	if err != nil {
		return Range{}, err
	}
	if n < 0 {
		return Range{}, errs.OutOfRange{
			What:     "length",
			ValidLow: "0", ValidHigh: strconv.Itoa(math.MaxInt),
			Actual: strconv.Itoa(n)}
	}
	return s.Indices(n)
}

func fixBound(o Opt, length, low, high, def int) (int, error) {
	v, ok := o.Get()
	if !ok {
		return def, nil
	}
	i, err := vals.ToIndex(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += length
	}
	return clamp(i, low, high), nil
}

// ceilDiv returns the number of steps of size |step| needed to cover a
// distance d, or 0 if d is not positive. The sign of step is ignored, which
// keeps step == math.MinInt from overflowing.
func ceilDiv(d, step int) int {
	if d <= 0 {
		return 0
	}
	q, r := d/step, d%step
	if q < 0 {
		q = -q
	}
	if r != 0 {
		q++
	}
	return q
}
