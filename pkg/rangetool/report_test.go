package rangetool

import (
	"strings"
	"testing"

	"src.strided.sh/pkg/slice"
	. "src.strided.sh/pkg/tt"
)

func TestPositionMap(t *testing.T) {
	Test(t, Fn("positionMap", positionMap), Table{
		Args(0, []int{}).Rets(""),
		Args(5, []int{0, 2, 4}).Rets("x.x.x"),
		Args(4, []int{3, 2, 1, 0}).Rets("xxxx"),
		Args(3, []int{}).Rets("..."),
	})
}

func TestFormatPositions(t *testing.T) {
	Test(t, Fn("formatPositions", formatPositions), Table{
		Args([]int{}, false).Rets("(none)"),
		Args([]int{4, 3}, false).Rets("4 3"),
		Args([]int{0, 1}, true).Rets("0 1 ..."),
	})
}

func TestNewReport_Truncates(t *testing.T) {
	s := slice.Upto(slice.None)
	r, _ := s.Indices(MaxPositions + 1)
	rep := newReport(s, MaxPositions+1, r)
	if len(rep.Positions) != MaxPositions || !rep.Truncated {
		t.Errorf("got %d positions, truncated = %v; want %d, true",
			len(rep.Positions), rep.Truncated, MaxPositions)
	}

	r, _ = s.Indices(MaxPositions)
	rep = newReport(s, MaxPositions, r)
	if len(rep.Positions) != MaxPositions || rep.Truncated {
		t.Errorf("got %d positions, truncated = %v; want %d, false",
			len(rep.Positions), rep.Truncated, MaxPositions)
	}
}

func TestWriteText_Map(t *testing.T) {
	s := slice.New(slice.Some(1), slice.None, slice.Some(3))
	r, _ := s.Indices(8)
	rep := newReport(s, 8, r)

	var sb strings.Builder
	rep.WriteText(&sb, 8)
	if !strings.Contains(sb.String(), "map: .x..x..x\n") {
		t.Errorf("got %q, want map line", sb.String())
	}

	sb.Reset()
	rep.WriteText(&sb, 7)
	if strings.Contains(sb.String(), "map:") {
		t.Errorf("got %q, want no map line when too narrow", sb.String())
	}
}
