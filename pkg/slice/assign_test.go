package slice

import (
	"errors"
	"reflect"
	"testing"

	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/vals"
	. "src.strided.sh/pkg/tt"
)

type write struct {
	i int
	v any
}

// recorder records the writes of an assignment.
type recorder struct{ writes []write }

func (r *recorder) set(i int, v any) error {
	r.writes = append(r.writes, write{i, v})
	return nil
}

// sizedSeq has a length and ordered iteration, but no indexed read. Len
// reports n instead of the actual length when n >= 0.
type sizedSeq struct {
	elems []any
	n     int
}

func newSized(vs ...any) sizedSeq { return sizedSeq{vs, -1} }

func (s sizedSeq) Len() int {
	if s.n >= 0 {
		return s.n
	}
	return len(s.elems)
}

func (s sizedSeq) Iterate(f func(any) bool) {
	for _, v := range s.elems {
		if !f(v) {
			return
		}
	}
}

// unsized returns a bare iterable yielding vs.
func unsized(vs ...any) vals.IterFunc {
	return func(yield func(any) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func sources(vs ...any) map[Tier]any {
	return map[Tier]any{
		RandomAccess:  vals.MakeList(vs...),
		SizedSequence: newSized(vs...),
		Iterable:      unsized(vs...),
	}
}

func TestClassify(t *testing.T) {
	Test(t, Fn("Classify", Classify), Table{
		Args(vals.MakeList()).Rets(RandomAccess),
		Args([]any{1}).Rets(RandomAccess),
		Args(newSized()).Rets(SizedSequence),
		Args(unsized()).Rets(Iterable),
		Args("abc").Rets(Iterable),
		Args(42).Rets(Iterable),
	})
}

func TestTier_String(t *testing.T) {
	Test(t, Fn("Tier.String", Tier.String), Table{
		Args(RandomAccess).Rets("random-access"),
		Args(SizedSequence).Rets("sized-sequence"),
		Args(Iterable).Rets("iterable"),
	})
}

func TestAssign_SameWritesForAllTiers(t *testing.T) {
	tests := []struct {
		s      Slice
		length int
		vs     []any
		want   []write
	}{
		{New(None, None, Some(2)), 5, []any{"a", "b", "c"},
			[]write{{0, "a"}, {2, "b"}, {4, "c"}}},
		{New(None, None, Some(-1)), 3, []any{"a", "b", "c"},
			[]write{{2, "a"}, {1, "b"}, {0, "c"}}},
		{New(Some(-1), Some(0), Some(-3)), 8, []any{1, 2, 3},
			[]write{{7, 1}, {4, 2}, {1, 3}}},
		{New(Some(1), Some(1), Some(1)), 5, []any{}, nil},
		{New(None, None, Some(1)), 0, []any{}, nil},
	}
	for _, test := range tests {
		for tier, src := range sources(test.vs...) {
			if Classify(src) != tier {
				t.Fatalf("Classify(%v) = %v, want %v", src, Classify(src), tier)
			}
			var rec recorder
			err := test.s.Assign(test.length, rec.set, src)
			if err != nil {
				t.Errorf("%v.Assign(%d) from %v -> err %v", test.s, test.length, tier, err)
			}
			if !reflect.DeepEqual(rec.writes, test.want) {
				t.Errorf("%v.Assign(%d) from %v wrote %v, want %v",
					test.s, test.length, tier, rec.writes, test.want)
			}
		}
	}
}

func TestAssign_StrictCount(t *testing.T) {
	// Resolves to 5 positions: 0, 2, 4, 6, 8.
	s := New(None, None, Some(2))
	tests := []struct {
		vs      []any
		wantErr error
	}{
		{[]any{1, 2, 3, 4}, errs.TooFewItems{Want: 5, Actual: 4}},
		{[]any{1, 2, 3, 4, 5, 6}, errs.TooManyItems{Want: 5, Actual: 6}},
	}
	for _, test := range tests {
		for tier, src := range sources(test.vs...) {
			var rec recorder
			err := s.Assign(10, rec.set, src)
			if err != test.wantErr {
				t.Errorf("assign from %v -> err %v, want %v", tier, err, test.wantErr)
			}
			if len(rec.writes) > 0 {
				t.Errorf("assign from %v wrote %v, want no writes", tier, rec.writes)
			}
		}
	}
}

func TestAssign_MissingStep(t *testing.T) {
	for _, s := range []Slice{Slice{}, Span(Some(0), Some(3))} {
		var rec recorder
		err := s.Assign(3, rec.set, vals.MakeList(1, 2, 3))
		if err != (errs.MissingStep{}) {
			t.Errorf("%v.Assign -> err %v, want MissingStep", s, err)
		}
		if len(rec.writes) > 0 {
			t.Errorf("%v.Assign wrote %v", s, rec.writes)
		}
	}
}

func TestAssign_IndicesErrors(t *testing.T) {
	var rec recorder
	err := New(None, None, Some(0)).Assign(3, rec.set, vals.MakeList())
	if err != (errs.ZeroStep{}) {
		t.Errorf("got err %v, want ZeroStep", err)
	}
	// Bad components are reported before the missing step.
	err = Span(Some("x"), None).Assign(3, rec.set, vals.MakeList())
	if err != (errs.BadIndex{Kind: "string"}) {
		t.Errorf("got err %v, want BadIndex", err)
	}
}

var errReadOnly = errors.New("read-only")

func TestAssign_SetErrorAborts(t *testing.T) {
	for tier, src := range sources("a", "b", "c") {
		var writes []int
		set := func(i int, v any) error {
			if i == 1 {
				return errReadOnly
			}
			writes = append(writes, i)
			return nil
		}
		err := New(None, None, Some(1)).Assign(3, set, src)
		if err != errReadOnly {
			t.Errorf("assign from %v -> err %v, want %v", tier, err, errReadOnly)
		}
		if !reflect.DeepEqual(writes, []int{0}) {
			t.Errorf("assign from %v wrote %v, want [0]", tier, writes)
		}
	}
}

func TestAssign_SizedSequenceWithWrongLen(t *testing.T) {
	s := New(None, None, Some(1))

	// Len agrees with the count but the sequence runs short. Nothing is
	// written.
	var rec recorder
	err := s.Assign(3, rec.set, sizedSeq{[]any{1, 2}, 3})
	if err != (errs.TooFewItems{Want: 3, Actual: 2}) {
		t.Errorf("got err %v, want TooFewItems", err)
	}
	if len(rec.writes) > 0 {
		t.Errorf("got writes %v, want none", rec.writes)
	}

	rec = recorder{}
	err = New(Some(1), None, Some(2)).Assign(8, rec.set, sizedSeq{[]any{"a", "b"}, 4})
	if err != (errs.TooFewItems{Want: 4, Actual: 2}) {
		t.Errorf("got err %v, want TooFewItems", err)
	}
	if len(rec.writes) > 0 {
		t.Errorf("got writes %v, want none", rec.writes)
	}

	// Len agrees with the count but the sequence has more; the rest is not
	// read.
	rec = recorder{}
	err = s.Assign(2, rec.set, sizedSeq{[]any{1, 2, 3}, 2})
	if err != nil {
		t.Errorf("got err %v", err)
	}
	if !reflect.DeepEqual(rec.writes, []write{{0, 1}, {1, 2}}) {
		t.Errorf("wrote %v", rec.writes)
	}

	// An empty assignment never iterates.
	rec = recorder{}
	err = s.Assign(0, rec.set, sizedSeq{[]any{1}, 0})
	if err != nil || len(rec.writes) > 0 {
		t.Errorf("got err %v and writes %v", err, rec.writes)
	}
}

func TestAssign_StringSource(t *testing.T) {
	var rec recorder
	err := New(Some(1), None, Some(1)).Assign(3, rec.set, "xy")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec.writes, []write{{1, "x"}, {2, "y"}}) {
		t.Errorf("wrote %v", rec.writes)
	}
}

func TestAssign_NotIterable(t *testing.T) {
	var rec recorder
	err := New(None, None, Some(1)).Assign(1, rec.set, 42)
	if err == nil || err.Error() != "cannot iterate int" {
		t.Errorf("got err %v, want cannot iterate int", err)
	}
}

func TestAssign_IntoList(t *testing.T) {
	l := vals.MakeList(0, 1, 2, 3, 4, 5)
	set := func(i int, v any) error {
		l = l.Assoc(i, v)
		return nil
	}
	err := New(Some(-1), None, Some(-2)).Assign(l.Len(), set, []any{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	vals.TestValue(t, l).Equal(vals.MakeList(0, "c", 2, "b", 4, "a"))
}
