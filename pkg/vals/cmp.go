package vals

import (
	"math"
	"math/big"
)

// Ordering relationship between two values.
type Ordering uint8

// Possible Ordering values.
const (
	CmpLess Ordering = iota
	CmpEqual
	CmpMore
	CmpUncomparable
)

func (o Ordering) String() string {
	switch o {
	case CmpLess:
		return "less"
	case CmpEqual:
		return "equal"
	case CmpMore:
		return "more"
	default:
		return "uncomparable"
	}
}

// Comparer wraps the Cmp method.
type Comparer interface {
	// Cmp compares the receiver to another value. It returns a non-nil error
	// when the two values have no ordering.
	Cmp(other any) (Ordering, error)
}

// Cmp compares two values and returns the ordering relationship between them.
// Integers of all types and floats are compared numerically, strings
// lexicographically, Lists element by element, and types satisfying the
// Comparer interface with their Cmp method. Values of other types are only
// CmpEqual if they are Equal, and CmpUncomparable otherwise.
func Cmp(a, b any) Ordering {
	if x, ok := toBig(a); ok {
		if y, ok := toBig(b); ok {
			return compareBuiltin(x.Cmp(y), 0)
		}
		if y, ok := b.(float64); ok {
			f, _ := new(big.Float).SetInt(x).Float64()
			return compareFloat(f, y)
		}
		return CmpUncomparable
	}
	switch a := a.(type) {
	case nil:
		if b == nil {
			return CmpEqual
		}
	case bool:
		if b, ok := b.(bool); ok {
			switch {
			case a == b:
				return CmpEqual
			//lint:ignore S1002 using booleans as values, not conditions
			case a == false: // b == true is implicit
				return CmpLess
			default: // a == true && b == false
				return CmpMore
			}
		}
	case float64:
		if b, ok := b.(float64); ok {
			return compareFloat(a, b)
		}
		if y, ok := toBig(b); ok {
			f, _ := new(big.Float).SetInt(y).Float64()
			return compareFloat(a, f)
		}
	case string:
		if b, ok := b.(string); ok {
			return compareBuiltin(a, b)
		}
	case List:
		if b, ok := b.(List); ok {
			return cmpList(a, b)
		}
	case Comparer:
		o, err := a.Cmp(b)
		if err != nil {
			return CmpUncomparable
		}
		return o
	default:
		if Equal(a, b) {
			return CmpEqual
		}
	}
	return CmpUncomparable
}

func cmpList(a, b List) Ordering {
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		if o := Cmp(a.elems[i], b.elems[i]); o != CmpEqual {
			return o
		}
	}
	return compareBuiltin(a.Len(), b.Len())
}

func compareBuiltin[T interface{ int | string }](a, b T) Ordering {
	if a < b {
		return CmpLess
	} else if a > b {
		return CmpMore
	}
	return CmpEqual
}

func compareFloat(a, b float64) Ordering {
	// For the sake of ordering, NaN's are considered equal to each
	// other and smaller than all numbers
	switch {
	case math.IsNaN(a):
		if math.IsNaN(b) {
			return CmpEqual
		}
		return CmpLess
	case math.IsNaN(b):
		return CmpMore
	case a < b:
		return CmpLess
	case a > b:
		return CmpMore
	default: // a == b
		return CmpEqual
	}
}
