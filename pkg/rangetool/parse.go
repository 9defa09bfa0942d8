package rangetool

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"src.strided.sh/pkg/slice"
)

// RangeSyntaxError is returned by ParseRange for malformed range texts.
type RangeSyntaxError struct {
	Text   string
	Reason string
}

func (e RangeSyntaxError) Error() string {
	return fmt.Sprintf("bad range %q: %s", e.Text, e.Reason)
}

// ParseRange parses a range text into a slice. The text is either "stop" or
// "start:stop" or "start:stop:step". Each part is a decimal integer, or empty
// or "None" for an absent component. Integers that don't fit in an int are
// kept as *big.Int, so that they fail when the slice is resolved.
func ParseRange(text string) (slice.Slice, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return slice.Slice{}, RangeSyntaxError{text, "too many colons"}
	}
	opts := make([]slice.Opt, len(parts))
	for i, part := range parts {
		o, err := parseComponent(part)
		if err != nil {
			return slice.Slice{}, RangeSyntaxError{text, err.Error()}
		}
		opts[i] = o
	}
	switch len(opts) {
	case 1:
		return slice.Upto(opts[0]), nil
	case 2:
		return slice.Span(opts[0], opts[1]), nil
	default:
		return slice.New(opts[0], opts[1], opts[2]), nil
	}
}

// IsRange reports whether text is a valid range text.
func IsRange(text string) bool {
	_, err := ParseRange(text)
	return err == nil
}

func parseComponent(s string) (slice.Opt, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return slice.None, nil
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return slice.None, fmt.Errorf("%q is not an integer", s)
	}
	if z.IsInt64() && int64(int(z.Int64())) == z.Int64() {
		return slice.Some(int(z.Int64())), nil
	}
	return slice.Some(z), nil
}

// ParseValue parses a command-line value to assign. Decimal integers become
// ints; everything else is kept as a string.
func ParseValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}
