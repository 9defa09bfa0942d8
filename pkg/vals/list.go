package vals

// ListIndexer is satisfied by values that support O(1) length and indexed
// read, the fastest source of a strided assignment.
type ListIndexer interface {
	Lener
	// Index returns the element at position i, and whether i is within
	// [0, Len()).
	Index(i int) (any, bool)
}

// List is an immutable random-access sequence of values.
type List struct {
	elems []any
}

// EmptyList is a List with no elements.
var EmptyList = List{}

// MakeList creates a new List from the given values. The argument is copied.
func MakeList(vs ...any) List {
	return List{append([]any(nil), vs...)}
}

var (
	_ ListIndexer = List{}
	_ Iterator    = List{}
)

// Len returns the number of elements in the list.
func (l List) Len() int { return len(l.elems) }

// Index returns the element at position i.
func (l List) Index(i int) (any, bool) {
	if i < 0 || i >= len(l.elems) {
		return nil, false
	}
	return l.elems[i], true
}

// Iterate calls f with each element of the list in order.
func (l List) Iterate(f func(any) bool) {
	for _, v := range l.elems {
		if !f(v) {
			return
		}
	}
}

// Assoc returns a copy of the list with the element at position i replaced
// by v. It panics if i is out of range.
func (l List) Assoc(i int, v any) List {
	elems := append([]any(nil), l.elems...)
	elems[i] = v
	return List{elems}
}

// Values returns a copy of the elements of the list.
func (l List) Values() []any {
	return append([]any(nil), l.elems...)
}

// Kind returns "list".
func (List) Kind() string { return "list" }
