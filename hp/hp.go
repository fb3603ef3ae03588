// Package hp implements the arbitrary-precision real arithmetic used
// to hold the viewport center and scale and to compute the reference
// orbit far past the range double-precision floats can resolve.
//
// https://en.wikipedia.org/wiki/Arbitrary-precision_arithmetic
package hp

import "math/big"

// Bits is the mantissa precision carried by every Float, matching the
// PRECISION_BITS compile-time constant.
const Bits = 1024

// Float is a value-semantics arbitrary-precision real. All operations
// write their result into the receiver and never alias an argument
// unless the argument is also the receiver, e.g. x.Add(x, y) is safe
// but the converse - writing into y - never happens.
type Float struct {
	v big.Float
}

// New returns a zero-valued Float at the standard precision.
func New() *Float {
	f := &Float{}
	f.v.SetPrec(Bits)
	return f
}

// SetFloat64 sets f to x and returns f.
func (f *Float) SetFloat64(x float64) *Float {
	f.v.SetPrec(Bits).SetFloat64(x)
	return f
}

// SetString sets f to the value of s, given in decimal. It reports
// whether s was a valid number.
func (f *Float) SetString(s string) (*Float, bool) {
	f.v.SetPrec(Bits)
	_, ok := f.v.SetString(s)
	return f, ok
}

// Set sets f to x and returns f.
func (f *Float) Set(x *Float) *Float {
	f.v.SetPrec(Bits).Set(&x.v)
	return f
}

// Add sets f = a + b and returns f.
func (f *Float) Add(a, b *Float) *Float {
	f.v.SetPrec(Bits).Add(&a.v, &b.v)
	return f
}

// Sub sets f = a - b and returns f.
func (f *Float) Sub(a, b *Float) *Float {
	f.v.SetPrec(Bits).Sub(&a.v, &b.v)
	return f
}

// Mul sets f = a * b and returns f.
func (f *Float) Mul(a, b *Float) *Float {
	f.v.SetPrec(Bits).Mul(&a.v, &b.v)
	return f
}

// MulFloat64 sets f = a * x and returns f.
func (f *Float) MulFloat64(a *Float, x float64) *Float {
	var t big.Float
	t.SetPrec(Bits).SetFloat64(x)
	f.v.SetPrec(Bits).Mul(&a.v, &t)
	return f
}

// Cmp compares f and x, returning -1, 0 or +1 as f is less than,
// equal to, or greater than x.
func (f *Float) Cmp(x *Float) int {
	return f.v.Cmp(&x.v)
}

// Float64 returns the float64 value nearest to f, rounded to nearest.
func (f *Float) Float64() float64 {
	v, _ := f.v.Float64()
	return v
}
