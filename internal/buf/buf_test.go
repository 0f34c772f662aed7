package buf

import (
	"math"
	"testing"
)

func TestAddU64(t *testing.T) {
	if sum, ok := AddU64(10, 5); !ok || sum != 15 {
		t.Fatalf("AddU64(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddU64(math.MaxUint64, 1); ok {
		t.Fatalf("expected overflow when adding to MaxUint64")
	}
	if sum, ok := AddU64(math.MaxUint64, 0); !ok || sum != math.MaxUint64 {
		t.Fatalf("AddU64(MaxUint64,0)=%d,%v want MaxUint64,true", sum, ok)
	}
}

func TestInRange(t *testing.T) {
	if !InRange(100, 0, 100) {
		t.Fatalf("full range should fit")
	}
	if InRange(100, 1, 100) {
		t.Fatalf("range past end should not fit")
	}
	if InRange(100, math.MaxUint64, 8) {
		t.Fatalf("overflowing range should not fit")
	}
	if !InRange(100, 100, 0) {
		t.Fatalf("empty range at end should fit")
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	got, ok := Slice(data, 1, 3)
	if !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
}
