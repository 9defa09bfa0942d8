package slice

import (
	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/logutil"
	"src.strided.sh/pkg/vals"
)

var logger = logutil.GetLogger("[slice] ")

// Tier classifies a source of strided assignment by how its elements can be
// read.
type Tier int

// Possible Tier values, in the order they are probed.
const (
	// RandomAccess sources implement vals.ListIndexer, or are []any.
	RandomAccess Tier = iota
	// SizedSequence sources implement vals.Lener and vals.Iterator.
	SizedSequence
	// Iterable sources are anything else vals.Iterate accepts.
	Iterable
)

func (t Tier) String() string {
	switch t {
	case RandomAccess:
		return "random-access"
	case SizedSequence:
		return "sized-sequence"
	default:
		return "iterable"
	}
}

// Classify returns the tier Assign uses for a source.
func Classify(src any) Tier { return classify(src).tier() }

// Assign assigns the elements of src to the positions the slice selects in a
// sequence of the given length, by calling set with each position and element
// in order. The step of the slice must be present.
//
// The number of elements in src must be exactly the number of positions. For
// sources with a length, this is checked before any call to set, and sources
// without indexed read are read before any call to set. A count mismatch
// never leaves the sequence partially assigned, even when a source yields
// fewer elements than its length. An error from set aborts the
// assignment and is returned as is.
func (s Slice) Assign(length int, set func(i int, v any) error, src any) error {
	r, err := s.Indices(length)
	if err != nil {
		return err
	}
	if s.step.IsNone() {
		return errs.MissingStep{}
	}
	return classify(src).assign(r, set)
}

// source is one of randomAccess, sizedSequence and iterable.
type source interface {
	tier() Tier
	assign(r Range, set func(int, any) error) error
}

type sized interface {
	vals.Lener
	vals.Iterator
}

func classify(src any) source {
	switch src := src.(type) {
	case []any:
		return randomAccess{anySlice(src)}
	case vals.ListIndexer:
		return randomAccess{src}
	case sized:
		return sizedSequence{src}
	default:
		return iterable{src}
	}
}

type randomAccess struct{ l vals.ListIndexer }

func (randomAccess) tier() Tier { return RandomAccess }

func (s randomAccess) assign(r Range, set func(int, any) error) error {
	if err := checkCount(r.Count, s.l.Len()); err != nil {
		return err
	}
	for i := 0; i < r.Count; i++ {
		v, _ := s.l.Index(i)
		if err := set(r.Index(i), v); err != nil {
			return err
		}
	}
	return nil
}

type sizedSequence struct{ seq sized }

func (sizedSequence) tier() Tier { return SizedSequence }

func (s sizedSequence) assign(r Range, set func(int, any) error) error {
	if err := checkCount(r.Count, s.seq.Len()); err != nil {
		return err
	}
	if r.Count == 0 {
		return nil
	}
	// Len may overstate what Iterate yields, so the first r.Count elements
	// are read before any write.
	buf := make([]any, 0, r.Count)
	s.seq.Iterate(func(v any) bool {
		buf = append(buf, v)
		return len(buf) < r.Count
	})
	if len(buf) < r.Count {
		return errs.TooFewItems{Want: r.Count, Actual: len(buf)}
	}
	return randomAccess{anySlice(buf)}.assign(r, set)
}

type iterable struct{ v any }

func (iterable) tier() Tier { return Iterable }

func (s iterable) assign(r Range, set func(int, any) error) error {
	buf, err := vals.Collect(s.v)
	if err != nil {
		return err
	}
	logger.Printf("buffered %d elements of %s for %d positions", len(buf), vals.Kind(s.v), r.Count)
	return randomAccess{anySlice(buf)}.assign(r, set)
}

func checkCount(want, actual int) error {
	switch {
	case actual < want:
		return errs.TooFewItems{Want: want, Actual: actual}
	case actual > want:
		return errs.TooManyItems{Want: want, Actual: actual}
	}
	return nil
}

type anySlice []any

func (s anySlice) Len() int { return len(s) }

func (s anySlice) Index(i int) (any, bool) {
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}
