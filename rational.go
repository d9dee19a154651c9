// Copyright 2024 The BigRationalLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigrational

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Errors reported by this package. Operations never retry or recover; every
// failure aborts the single call that detected it.
var (
	// ErrZeroDenominator is returned by constructors given a zero denominator.
	ErrZeroDenominator = errors.New("bigrational: zero denominator")

	// ErrDivisionByZero is returned by Quo when the divisor is zero. It wraps
	// ErrZeroDenominator since the failure surfaces from the normalizing
	// constructor.
	ErrDivisionByZero = fmt.Errorf("bigrational: division by zero: %w", ErrZeroDenominator)

	// ErrFormat is returned when textual input cannot be parsed.
	ErrFormat = errors.New("bigrational: invalid number format")

	// ErrNilOperand reports a nil *big.Int where a value is required.
	ErrNilOperand = errors.New("bigrational: nil operand")
)

var (
	intOne = big.NewInt(1)
	intTen = big.NewInt(10)
	ratOne = FromInt64(1)
)

// A Rat represents a quotient a/b of arbitrary precision, always held in
// canonical reduced form: gcd(|a|, b) == 1, b > 0, and the sign of the value
// carried by the numerator. Zero is uniquely 0/1.
//
// Rat is an immutable value: methods never modify their operands and every
// result is a fresh value produced by the one normalizing constructor. The
// zero value of Rat is a ready-to-use 0.
type Rat struct {
	num big.Int // signed numerator
	den big.Int // denominator, > 0 once set; the zero value reads as 1
}

// denom returns the denominator of x for internal, read-only use.
func (x Rat) denom() *big.Int {
	if x.den.Sign() == 0 {
		return intOne
	}
	return &x.den
}

// gcd returns the greatest common divisor of |a| and b in a new big.Int,
// computed with the Euclidean algorithm. gcd(0, b) is b, which keeps the
// canonical zero representation 0/1 intact. b must be positive.
func gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// norm returns num/den reduced to lowest terms with the sign folded into the
// numerator. den must be non-zero. All constructors and operators funnel
// through norm; nothing bypasses it.
func norm(num, den *big.Int) Rat {
	var z Rat
	z.num.Set(num)
	z.den.Abs(den)
	if den.Sign() < 0 {
		z.num.Neg(&z.num)
	}
	if z.num.Sign() == 0 {
		z.den.SetInt64(1)
		return z
	}
	if g := gcd(&z.num, &z.den); g.Cmp(intOne) != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}
	return z
}

// New returns the rational num/den in canonical reduced form. It returns
// ErrNilOperand when either argument is nil and ErrZeroDenominator when den
// is zero. The arguments are copied, never retained.
func New(num, den *big.Int) (Rat, error) {
	if num == nil || den == nil {
		return Rat{}, ErrNilOperand
	}
	if den.Sign() == 0 {
		return Rat{}, ErrZeroDenominator
	}
	return norm(num, den), nil
}

// NewInt64 returns the rational num/den in canonical reduced form.
func NewInt64(num, den int64) (Rat, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromBig returns the rational n/1. It panics with ErrNilOperand if n is nil.
func FromBig(n *big.Int) Rat {
	if n == nil {
		panic(ErrNilOperand)
	}
	var z Rat
	z.num.Set(n)
	z.den.SetInt64(1)
	return z
}

// FromInt64 returns the rational n/1.
func FromInt64(n int64) Rat {
	var z Rat
	z.num.SetInt64(n)
	z.den.SetInt64(1)
	return z
}

// Num returns a copy of the numerator of x; it carries the sign of x.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(&x.num)
}

// Denom returns a copy of the denominator of x; it is always positive.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.denom())
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x Rat) Sign() int {
	return x.num.Sign()
}

// IsZero reports whether x is zero.
func (x Rat) IsZero() bool {
	return x.num.Sign() == 0
}

// IsInt reports whether x is an integer, that is, whether its reduced
// denominator is 1.
func (x Rat) IsInt() bool {
	return x.denom().Cmp(intOne) == 0
}

// Add returns the sum x + y.
func (x Rat) Add(y Rat) Rat {
	xd, yd := x.denom(), y.denom()
	num := new(big.Int).Mul(&x.num, yd)
	num.Add(num, new(big.Int).Mul(&y.num, xd))
	return norm(num, new(big.Int).Mul(xd, yd))
}

// Sub returns the difference x - y.
func (x Rat) Sub(y Rat) Rat {
	xd, yd := x.denom(), y.denom()
	num := new(big.Int).Mul(&x.num, yd)
	num.Sub(num, new(big.Int).Mul(&y.num, xd))
	return norm(num, new(big.Int).Mul(xd, yd))
}

// Mul returns the product x * y.
func (x Rat) Mul(y Rat) Rat {
	num := new(big.Int).Mul(&x.num, &y.num)
	return norm(num, new(big.Int).Mul(x.denom(), y.denom()))
}

// Quo returns the quotient x / y. It returns ErrDivisionByZero when y is
// zero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.num.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	num := new(big.Int).Mul(&x.num, y.denom())
	return norm(num, new(big.Int).Mul(&y.num, x.denom())), nil
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	var z Rat
	z.num.Abs(&x.num)
	z.den.Set(x.denom())
	return z
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	var z Rat
	z.num.Neg(&x.num)
	z.den.Set(x.denom())
	return z
}

// Inc returns x + 1.
func (x Rat) Inc() Rat {
	return x.Add(ratOne)
}

// Dec returns x - 1.
func (x Rat) Dec() Rat {
	return x.Sub(ratOne)
}

// Int returns x truncated toward zero as a new big.Int.
func (x Rat) Int() *big.Int {
	return new(big.Int).Quo(&x.num, x.denom())
}

// Int64 returns x truncated toward zero; ok reports whether the conversion
// is exact, that is, whether x is an integer. If the truncated value does
// not fit in an int64, Int64 returns 0, false.
func (x Rat) Int64() (i int64, ok bool) {
	n := x.Int()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), x.IsInt()
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, and +1 if
// x > y.
//
// Whole parts are compared first. big.Int.QuoRem truncates toward zero, so a
// negative value yields a non-positive whole part and a remainder carrying
// the dividend's sign, which keeps the comparison meaningful across mixed
// signs. Tied whole parts fall back to cross-multiplying the remainders,
// since remainders over unequal denominators are not directly comparable.
func (x Rat) Cmp(y Rat) int {
	xd, yd := x.denom(), y.denom()
	xw, xr := new(big.Int).QuoRem(&x.num, xd, new(big.Int))
	yw, yr := new(big.Int).QuoRem(&y.num, yd, new(big.Int))
	if c := xw.Cmp(yw); c != 0 {
		return c
	}
	xr.Mul(xr, yd)
	yr.Mul(yr, xd)
	return xr.Cmp(yr)
}

// Equal reports whether x and y represent the same value. Both operands are
// in canonical reduced form, so comparing numerators and denominators
// directly is equivalent to cross-multiplication equality.
func (x Rat) Equal(y Rat) bool {
	return x.num.Cmp(&y.num) == 0 && x.denom().Cmp(y.denom()) == 0
}

// CmpBig compares x to the integer n and returns -1, 0, or +1. It panics
// with ErrNilOperand if n is nil.
func (x Rat) CmpBig(n *big.Int) int {
	if n == nil {
		panic(ErrNilOperand)
	}
	return x.Cmp(FromBig(n))
}

// EqualBig reports whether x equals the integer n. An integer can only equal
// a Rat with denominator 1. A nil n is never equal to any value.
func (x Rat) EqualBig(n *big.Int) bool {
	if n == nil {
		return false
	}
	return x.IsInt() && x.num.Cmp(n) == 0
}

// CmpInt64 compares x to the integer n and returns -1, 0, or +1.
func (x Rat) CmpInt64(n int64) int {
	return x.CmpBig(big.NewInt(n))
}

// EqualInt64 reports whether x equals the integer n.
func (x Rat) EqualInt64(n int64) bool {
	return x.EqualBig(big.NewInt(n))
}

// Hash returns a 64-bit hash of x. Values that compare equal hash equal,
// which the canonical-form invariant guarantees.
func (x Rat) Hash() uint64 {
	d := xxhash.New()
	if x.num.Sign() < 0 {
		d.Write([]byte{'-'})
	}
	d.Write(x.num.Bytes())
	d.Write([]byte{'/'})
	d.Write(x.denom().Bytes())
	return d.Sum64()
}
