package vals

import (
	"reflect"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for nil, bool,
// string, all integer types (compared by value across types), float64, and
// types satisfying the Equaler interface. For other types, it
// uses reflect.DeepEqual to compare the two values.
func Equal(x, y any) bool {
	if a, ok := toBig(x); ok {
		if b, ok := toBig(y); ok {
			return a.Cmp(b) == 0
		}
		return false
	}
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalList(x, y List) bool {
	if x.Len() != y.Len() {
		return false
	}
	for i := range x.elems {
		if !Equal(x.elems[i], y.elems[i]) {
			return false
		}
	}
	return true
}

// Equal implements Equaler.
func (l List) Equal(other any) bool {
	if other, ok := other.(List); ok {
		return equalList(l, other)
	}
	return false
}
