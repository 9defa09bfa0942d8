package vals

import (
	"fmt"
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the receiver. The string is
	// preferably a literal that evaluates to a value equal to the receiver,
	// or otherwise a string enclosed in "<>" containing the kind of the value.
	Repr() string
}

// NoneRepr is the marker used for absent components in composite
// representations. It is never the representation of a value.
const NoneRepr = "None"

// NilRepr is the representation of nil.
const NilRepr = "nil"

// Repr returns the representation for a value. It is implemented for nil,
// bool, string, all integer types, float64, the List type and types
// satisfying the Reprer interface. For other types, it uses fmt.Sprint with
// the format "<unknown %v>".
func Repr(v any) string {
	if i, ok := toBig(v); ok {
		return i.String()
	}
	switch v := v.(type) {
	case nil:
		return NilRepr
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// Repr implements Reprer.
func (l List) Repr() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Repr(e))
	}
	sb.WriteByte(']')
	return sb.String()
}
