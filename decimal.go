// This file implements conversions between Rat and other numeric types:
// shopspring decimals and math/big rationals.

package bigrational

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FromDecimal returns the exact rational value of d. A decimal c×10^e maps
// to the fraction c×10^e / 1 when e >= 0, and c / 10^-e otherwise; the
// result is reduced as usual, so FromDecimal(0.75) is 3/4.
func FromDecimal(d decimal.Decimal) Rat {
	coeff := d.Coefficient()
	exp := int64(d.Exponent())
	if exp >= 0 {
		pow := new(big.Int).Exp(intTen, big.NewInt(exp), nil)
		return FromBig(coeff.Mul(coeff, pow))
	}
	den := new(big.Int).Exp(intTen, big.NewInt(-exp), nil)
	return norm(coeff, den)
}

// ParseDecimal returns the exact rational value of the decimal string s,
// such as "1.25" (5/4) or "-3" (-3/1). It returns an error wrapping
// ErrFormat when s is not a valid decimal number.
func ParseDecimal(s string) (Rat, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return FromDecimal(d), nil
}

// Decimal returns x as a decimal with scale fractional digits, truncated
// toward zero like FloatString. scale must not be negative.
func (x Rat) Decimal(scale int32) decimal.Decimal {
	pow := new(big.Int).Exp(intTen, big.NewInt(int64(scale)), nil)
	q := new(big.Int).Mul(&x.num, pow)
	q.Quo(q, x.denom())
	return decimal.NewFromBigInt(q, -scale)
}

// Big returns x as a new math/big rational.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).SetFrac(x.Num(), x.Denom())
}

// FromBigRat returns the value of r as a Rat. It panics with ErrNilOperand
// if r is nil.
func FromBigRat(r *big.Rat) Rat {
	if r == nil {
		panic(ErrNilOperand)
	}
	return norm(r.Num(), r.Denom())
}
