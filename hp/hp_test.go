package hp

import "testing"

func TestAddSubMul(t *testing.T) {
	a := New().SetFloat64(0.75)
	b := New().SetFloat64(0.25)

	sum := New().Add(a, b)
	if got := sum.Float64(); got != 1.0 {
		t.Errorf("Add: got %v, want 1.0", got)
	}

	diff := New().Sub(a, b)
	if got := diff.Float64(); got != 0.5 {
		t.Errorf("Sub: got %v, want 0.5", got)
	}

	prod := New().Mul(a, b)
	if got := prod.Float64(); got != 0.1875 {
		t.Errorf("Mul: got %v, want 0.1875", got)
	}
}

func TestMulFloat64(t *testing.T) {
	a := New().SetFloat64(2.0)
	got := New().MulFloat64(a, 0.75).Float64()
	if got != 1.5 {
		t.Errorf("MulFloat64: got %v, want 1.5", got)
	}
}

func TestNoAliasing(t *testing.T) {
	a := New().SetFloat64(1.0)
	b := New().SetFloat64(2.0)
	origA, origB := a.Float64(), b.Float64()

	_ = New().Add(a, b)

	if a.Float64() != origA || b.Float64() != origB {
		t.Errorf("Add mutated an input: a=%v b=%v", a.Float64(), b.Float64())
	}
}

func TestCmp(t *testing.T) {
	a := New().SetFloat64(1.0)
	b := New().SetFloat64(2.0)

	if a.Cmp(b) >= 0 {
		t.Errorf("Cmp: want a < b")
	}
	if b.Cmp(a) <= 0 {
		t.Errorf("Cmp: want b > a")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("Cmp: want a == a")
	}
}

func TestSetString(t *testing.T) {
	f := New()
	_, ok := f.SetString("-0.75")
	if !ok {
		t.Fatalf("SetString: expected success")
	}
	if got := f.Float64(); got != -0.75 {
		t.Errorf("SetString: got %v, want -0.75", got)
	}

	_, ok = f.SetString("not-a-number")
	if ok {
		t.Errorf("SetString: expected failure on garbage input")
	}
}

// TestPrecisionSurvivesDeepZoom confirms the mantissa precision is
// wide enough to distinguish values far past the float64 ULP at 1.0,
// e.g. 1 + 1e-300 from 1.
func TestPrecisionSurvivesDeepZoom(t *testing.T) {
	a := New().SetFloat64(1.0)
	tiny := New()
	if _, ok := tiny.SetString("1e-300"); !ok {
		t.Fatalf("SetString: failed to parse 1e-300")
	}

	sum := New().Add(a, tiny)
	if sum.Cmp(a) <= 0 {
		t.Errorf("expected 1 + 1e-300 > 1 at %d-bit precision", Bits)
	}
}
