package vals

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver.
	Len() int
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length. It is implemented for the builtin type string, []any,
// and types satisfying the Lener interface. For other types, it returns -1.
//
// The length of a string is the number of codepoints in it, which is also the
// number of elements Iterate produces for it.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		n := 0
		for range v {
			n++
		}
		return n
	case []any:
		return len(v)
	case Lener:
		return v.Len()
	}
	return -1
}
