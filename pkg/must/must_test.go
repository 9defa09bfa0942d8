package must

import (
	"errors"
	"testing"
)

var errBad = errors.New("bad")

func TestOK(t *testing.T) {
	OK(nil)
	testPanics(t, errBad, func() { OK(errBad) })
}

func TestOK1(t *testing.T) {
	if v := OK1(10, nil); v != 10 {
		t.Errorf("OK1 -> %v, want 10", v)
	}
	testPanics(t, errBad, func() { OK1(10, errBad) })
}

func TestOK2(t *testing.T) {
	if v1, v2 := OK2(10, "x", nil); v1 != 10 || v2 != "x" {
		t.Errorf("OK2 -> (%v, %v), want (10, x)", v1, v2)
	}
	testPanics(t, errBad, func() { OK2(10, "x", errBad) })
}

func testPanics(t *testing.T, wantPanic any, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != wantPanic {
			t.Errorf("panic with %v, want %v", r, wantPanic)
		}
	}()
	f()
}
