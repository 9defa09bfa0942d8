package vals

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

// IterFunc adapts a function to the Iterator interface. It has no length, so
// it is the canonical example of a bare iterable.
type IterFunc func(yield func(any) bool)

// Iterate calls f.
func (f IterFunc) Iterate(yield func(any) bool) { f(yield) }

// Kind returns "iterator".
func (IterFunc) Kind() string { return "iterator" }

type cannotIterate struct{ kind string }

func (err cannotIterate) Error() string { return "cannot iterate " + err.kind }

// CanIterate returns whether the value can be iterated. If CanIterate(v) is
// true, calling Iterate(v, f) will not result in an error.
func CanIterate(v any) bool {
	switch v.(type) {
	case Iterator, string, []any:
		return true
	}
	return false
}

// Iterate iterates the supplied value, and calls the supplied function in each
// of its elements. The function can return false to break the iteration. It is
// implemented for the builtin type string (yielding one string per codepoint),
// []any, and types satisfying the Iterator interface. For these types, it
// always returns a nil error. For other types, it doesn't do anything and
// returns an error.
func Iterate(v any, f func(any) bool) error {
	switch v := v.(type) {
	case string:
		for _, r := range v {
			if !f(string(r)) {
				break
			}
		}
	case []any:
		for _, e := range v {
			if !f(e) {
				break
			}
		}
	case Iterator:
		v.Iterate(f)
	default:
		return cannotIterate{Kind(v)}
	}
	return nil
}

// Collect collects all elements of an iterable value into a slice.
func Collect(it any) ([]any, error) {
	var vs []any
	if n := Len(it); n >= 0 {
		vs = make([]any, 0, n)
	}
	err := Iterate(it, func(v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs, err
}
