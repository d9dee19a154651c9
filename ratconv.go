// This file implements rat-to-string conversion functions.

package bigrational

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultPrec is the number of fractional digits emitted when no precision
// is requested, as with the %f verb. Expansions that terminate earlier are
// emitted in full and never padded.
const DefaultPrec = 100

// sep separates the numerator and denominator in the textual fraction form.
const sep = " / "

// Parse returns the value of the fraction s, which must be of the form
// "a / b" with a and b signed decimal integers separated by exactly one
// space, slash, space. It returns an error wrapping ErrFormat when s does
// not split into exactly two integer segments, and ErrZeroDenominator when
// the denominator segment is zero.
func Parse(s string) (Rat, error) {
	segs := strings.Split(s, sep)
	if len(segs) != 2 {
		return Rat{}, fmt.Errorf("%w: %q is not of the form \"a / b\"", ErrFormat, s)
	}
	num, ok := new(big.Int).SetString(segs[0], 10)
	if !ok {
		return Rat{}, fmt.Errorf("%w: invalid numerator %q", ErrFormat, segs[0])
	}
	den, ok := new(big.Int).SetString(segs[1], 10)
	if !ok {
		return Rat{}, fmt.Errorf("%w: invalid denominator %q", ErrFormat, segs[1])
	}
	return New(num, den)
}

// MustParse is like Parse but panics on error. It simplifies safe
// initialization of package-level values.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns x in the fraction form "a / b", even if b == 1. Parse
// recovers the value exactly from this form.
func (x Rat) String() string {
	return x.num.String() + sep + x.denom().String()
}

// FloatString returns x in decimal form with up to prec fractional digits.
// The expansion is truncated, never rounded. It stops as soon as the running
// remainder reaches zero, so terminating expansions are rendered exactly and
// are not padded to prec digits; an exact integer is rendered without a
// decimal point.
func (x Rat) FloatString(prec int) string {
	return string(x.Append(nil, prec))
}

// Append appends the decimal form of x, as produced by FloatString, to buf
// and returns the extended buffer.
func (x Rat) Append(buf []byte, prec int) []byte {
	if x.num.Sign() < 0 {
		buf = append(buf, '-')
	}
	den := x.denom()
	rem := new(big.Int).Abs(&x.num)
	whole := new(big.Int).Quo(rem, den)
	rem.Sub(rem, new(big.Int).Mul(whole, den))
	buf = append(buf, whole.String()...)
	if rem.Sign() == 0 || prec <= 0 {
		return buf
	}
	buf = append(buf, '.')
	digit := new(big.Int)
	for i := 0; i < prec && rem.Sign() != 0; i++ {
		rem.Mul(rem, intTen)
		digit.Quo(rem, den)
		rem.Mod(rem, den)
		buf = append(buf, byte('0'+digit.Int64()))
	}
	return buf
}

var ratZero Rat
var _ fmt.Formatter = ratZero // Rat must implement fmt.Formatter
var _ fmt.Scanner = &ratZero  // *Rat must implement fmt.Scanner

// Format implements fmt.Formatter. The verbs 'v' and 's' produce the
// fraction form "a / b", 'f' the decimal form with the given precision
// (DefaultPrec if none), and 'd' the integer part truncated toward zero.
func (x Rat) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(s, x.String())
	case 'f':
		prec, ok := s.Precision()
		if !ok {
			prec = DefaultPrec
		}
		s.Write(x.Append(nil, prec))
	case 'd':
		fmt.Fprint(s, x.Int().String())
	default:
		fmt.Fprintf(s, "%%!%c(bigrational.Rat=%s)", verb, x.String())
	}
}

func ratTok(ch rune) bool {
	return strings.ContainsRune("+-0123456789", ch)
}

// Scan is a support routine for fmt.Scanner. It accepts the fraction form
// produced by String, with or without spaces around the slash, under the
// verbs 'v', 's' and 'f'.
func (z *Rat) Scan(s fmt.ScanState, verb rune) error {
	if !strings.ContainsRune("vsf", verb) {
		return fmt.Errorf("bigrational: invalid scan verb %q", verb)
	}
	numTok, err := s.Token(true, ratTok)
	if err != nil {
		return err
	}
	// Token returns a slice of shared data that the next Token call may
	// overwrite, so copy it before reading further.
	num := string(numTok)
	slash, err := s.Token(true, func(ch rune) bool { return ch == '/' })
	if err != nil {
		return err
	}
	if string(slash) != "/" {
		return fmt.Errorf("%w: missing fraction separator", ErrFormat)
	}
	den, err := s.Token(true, ratTok)
	if err != nil {
		return err
	}
	v, err := Parse(num + sep + string(den))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
