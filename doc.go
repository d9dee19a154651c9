// Copyright 2024 The BigRationalLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigrational implements arbitrary-precision rational numbers: exact
fractions of two math/big integers, kept always in canonical reduced form.
It is meant as a numeric primitive for callers that need exact fractional
arithmetic without floating-point rounding error, such as financial or
symbolic computation.

A Rat holds a signed numerator and a positive denominator sharing no common
factor greater than 1. Every constructor and every arithmetic operation
re-establishes this canonical form, so equality is plain field equality and
hashing is stable. Zero is uniquely 0/1.

Unlike math/big, Rat is an immutable value with no result receiver: methods
take their operands by value and return fresh values, so a Rat can be copied,
shared and used from concurrent goroutines freely:

	half, _ := bigrational.NewInt64(1, 2)
	third, _ := bigrational.NewInt64(1, 3)
	sum := half.Add(third) // 5/6; half and third are unchanged

The zero value for a Rat denotes 0 and is ready to use:

	var x bigrational.Rat // x == 0/1

New values are created with the constructors New, NewInt64, FromBig and
FromInt64, by parsing the textual fraction form "a / b" with Parse, or by
exact conversion from decimal strings and shopspring decimals with
ParseDecimal and FromDecimal. Conversions from built-in integers are always
explicit; there is no code path that bypasses normalization.

Two textual representations exist. String (and MarshalText, MarshalJSON)
produces the fraction form "a / b", which Parse inverts exactly for every
value. FloatString produces a bounded-precision decimal expansion, truncated
rather than rounded, and shortened when the expansion terminates early:

	bigrational.MustParse("1 / 3").FloatString(5)  // "0.33333"
	bigrational.MustParse("1 / 4").FloatString(10) // "0.25"

Failures are reported as errors wrapping the package sentinels
ErrZeroDenominator, ErrDivisionByZero, ErrFormat and ErrNilOperand.
*/
package bigrational
