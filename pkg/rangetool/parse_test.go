package rangetool

import (
	"math/big"
	"testing"

	"src.strided.sh/pkg/slice"
	. "src.strided.sh/pkg/tt"
)

var bigStart, _ = new(big.Int).SetString("99999999999999999999", 10)

func TestParseRange(t *testing.T) {
	Test(t, Fn("ParseRange", ParseRange), Table{
		Args("5").Rets(slice.Upto(slice.Some(5)), nil),
		Args("").Rets(slice.Upto(slice.None), nil),
		Args("1:").Rets(slice.Span(slice.Some(1), slice.None), nil),
		Args(":-1").Rets(slice.Span(slice.None, slice.Some(-1)), nil),
		Args("::-2").Rets(slice.New(slice.None, slice.None, slice.Some(-2)), nil),
		Args("None:3:None").Rets(slice.New(slice.None, slice.Some(3), slice.None), nil),
		Args(" 1 : 2 ").Rets(slice.Span(slice.Some(1), slice.Some(2)), nil),
		Args("99999999999999999999:").
			Rets(slice.Span(slice.Some(bigStart), slice.None), nil),

		Args("1:2:3:4").Rets(slice.Slice{},
			RangeSyntaxError{"1:2:3:4", "too many colons"}),
		Args("a:").Rets(slice.Slice{},
			RangeSyntaxError{"a:", `"a" is not an integer`}),
		Args("1.5").Rets(slice.Slice{},
			RangeSyntaxError{"1.5", `"1.5" is not an integer`}),
	})
}

func TestRangeSyntaxError(t *testing.T) {
	err := RangeSyntaxError{"1:2:3:4", "too many colons"}
	want := `bad range "1:2:3:4": too many colons`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestParseValue(t *testing.T) {
	Test(t, Fn("ParseValue", ParseValue), Table{
		Args("12").Rets(12),
		Args("-3").Rets(-3),
		Args("x").Rets("x"),
		Args("1e3").Rets("1e3"),
		Args("").Rets(""),
	})
}

func TestIsRange(t *testing.T) {
	Test(t, Fn("IsRange", IsRange), Table{
		Args("-2:").Rets(true),
		Args("-3::-1").Rets(true),
		Args("-3").Rets(true),
		Args("::").Rets(true),
		Args("-len").Rets(false),
		Args("-json").Rets(false),
		Args("-").Rets(false),
		Args("1:2:3:4").Rets(false),
	})
}
