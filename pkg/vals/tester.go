package vals

import (
	"reflect"
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v any
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v any) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind string) Tester {
	vt.t.Helper()
	kind := Kind(vt.v)
	if kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Hash tests the Hash of the value.
func (vt Tester) Hash(wantHash uint32) Tester {
	vt.t.Helper()
	hash, err := Hash(vt.v)
	if err != nil {
		vt.t.Errorf("Hash(v) -> err %v, want nil", err)
	}
	if hash != wantHash {
		vt.t.Errorf("Hash(v) = %v, want %v", hash, wantHash)
	}
	return vt
}

// HashError tests that hashing the value returns the given error.
func (vt Tester) HashError(wantErr error) Tester {
	vt.t.Helper()
	_, err := Hash(vt.v)
	if !reflect.DeepEqual(err, wantErr) {
		vt.t.Errorf("Hash(v) -> err %v, want %v", err, wantErr)
	}
	return vt
}

// Len tests the Len of the value.
func (vt Tester) Len(wantLen int) Tester {
	vt.t.Helper()
	n := Len(vt.v)
	if n != wantLen {
		vt.t.Errorf("Len(v) = %v, want %v", n, wantLen)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	repr := Repr(vt.v)
	if repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values.
func (vt Tester) Equal(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		eq := Equal(vt.v, other)
		if !eq {
			vt.t.Errorf("Equal(v, %v) = false, want true", other)
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		eq := Equal(vt.v, other)
		if eq {
			vt.t.Errorf("Equal(v, %v) = true, want false", other)
		}
	}
	return vt
}

// Cmp tests that comparing the value with other gives the wanted ordering.
func (vt Tester) Cmp(other any, want Ordering) Tester {
	vt.t.Helper()
	o := Cmp(vt.v, other)
	if o != want {
		vt.t.Errorf("Cmp(v, %v) = %v, want %v", other, o, want)
	}
	return vt
}

// Elems tests that iterating the value produces the given values.
func (vt Tester) Elems(want ...any) Tester {
	vt.t.Helper()
	got, err := Collect(vt.v)
	if err != nil {
		vt.t.Errorf("Collect(v) -> err %v, want nil", err)
	}
	if len(got) != len(want) || !Equal(MakeList(got...), MakeList(want...)) {
		vt.t.Errorf("Collect(v) -> %v, want %v", got, want)
	}
	return vt
}
