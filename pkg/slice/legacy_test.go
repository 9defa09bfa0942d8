package slice

import (
	"errors"
	"testing"

	"src.strided.sh/pkg/errs"
	"src.strided.sh/pkg/vals"
)

// countingLength returns a length function that reports n and counts its
// calls.
func countingLength(n int, calls *int) func() (int, error) {
	return func() (int, error) {
		*calls++
		return n, nil
	}
}

var fixLegacyTests = []struct {
	name      string
	s         Slice
	length    int
	wantStart int
	wantStop  int
	wantCalls int
}{
	{"both negative", Span(Some(-1), Some(-1)), 10, 9, 9, 1},
	{"negative start", Span(Some(-3), Some(5)), 10, 7, 5, 1},
	{"negative stop", Span(Some(2), Some(-3)), 10, 2, 7, 1},
	{"no negatives", Span(Some(2), Some(5)), 10, 2, 5, 0},
	{"absent start", Upto(Some(4)), 10, 0, 4, 0},
	{"absent stop", Span(Some(-2), None), 10, 8, MaxStop, 1},
	{"all absent", Slice{}, 10, 0, MaxStop, 0},
	{"no clamping low", Span(Some(-20), Some(-30)), 10, -10, -20, 1},
	{"no clamping high", Span(Some(20), Some(30)), 10, 20, 30, 0},
	{"step ignored", New(Some(1), Some(2), Some(0)), 10, 1, 2, 0},
}

func TestFixLegacy(t *testing.T) {
	for _, test := range fixLegacyTests {
		t.Run(test.name, func(t *testing.T) {
			calls := 0
			start, stop, err := test.s.FixLegacy(countingLength(test.length, &calls))
			if err != nil {
				t.Fatalf("got err %v", err)
			}
			if start != test.wantStart || stop != test.wantStop {
				t.Errorf("got (%d, %d), want (%d, %d)", start, stop, test.wantStart, test.wantStop)
			}
			if calls != test.wantCalls {
				t.Errorf("length called %d times, want %d", calls, test.wantCalls)
			}
		})
	}
}

var errNoLen = errors.New("no __len__")

func TestFixLegacy_LengthError(t *testing.T) {
	calls := 0
	length := func() (int, error) {
		calls++
		return 0, errNoLen
	}
	_, _, err := Span(Some(-1), Some(-1)).FixLegacy(length)
	if err != errNoLen {
		t.Errorf("got err %v, want %v", err, errNoLen)
	}
	if calls != 1 {
		t.Errorf("length called %d times, want 1", calls)
	}

	// The length is not needed, so its failure doesn't matter.
	start, stop, err := Span(Some(1), None).FixLegacy(length)
	if start != 1 || stop != MaxStop || err != nil {
		t.Errorf("got (%d, %d, %v), want (1, MaxStop, nil)", start, stop, err)
	}
}

func TestFixLegacy_BadIndex(t *testing.T) {
	calls := 0
	_, _, err := Span(Some(-1), Some("x")).FixLegacy(countingLength(5, &calls))
	if err != (errs.BadIndex{Kind: "string"}) {
		t.Errorf("got err %v, want BadIndex", err)
	}
	_, _, err = Span(Some(1.5), Some(-1)).FixLegacy(countingLength(5, &calls))
	if err != (errs.BadIndex{Kind: "float"}) {
		t.Errorf("got err %v, want BadIndex", err)
	}
	if calls != 1 {
		t.Errorf("length called %d times, want 1", calls)
	}
}

func TestLengthOf(t *testing.T) {
	start, stop, err := Span(Some(-1), None).FixLegacy(LengthOf(vals.MakeList(1, 2, 3)))
	if start != 2 || stop != MaxStop || err != nil {
		t.Errorf("got (%d, %d, %v), want (2, MaxStop, nil)", start, stop, err)
	}
	_, _, err = Span(Some(-1), None).FixLegacy(LengthOf(42))
	if err != (errs.NoLength{Kind: "int"}) {
		t.Errorf("got err %v, want NoLength", err)
	}
}

func TestClampLegacy(t *testing.T) {
	tests := []struct{ length, start, stop, wantStart, wantStop int }{
		{10, 2, 5, 2, 5},
		{10, -10, -20, 0, 0},
		{10, 8, MaxStop, 8, 10},
		{0, 3, 4, 0, 0},
	}
	for _, test := range tests {
		start, stop := ClampLegacy(test.length, test.start, test.stop)
		if start != test.wantStart || stop != test.wantStop {
			t.Errorf("ClampLegacy(%d, %d, %d) -> (%d, %d), want (%d, %d)",
				test.length, test.start, test.stop, start, stop, test.wantStart, test.wantStop)
		}
	}
}
