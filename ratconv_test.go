package bigrational

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct{ in, want string }{
		{"1 / 2", "1 / 2"},
		{"-1 / 2", "-1 / 2"},
		{"4 / 8", "1 / 2"},
		{"-3 / 6", "-1 / 2"},
		{"3 / -6", "-1 / 2"},
		{"+3 / 9", "1 / 3"},
		{"0 / 7", "0 / 1"},
		{"-0 / 3", "0 / 1"},
		{"123456789012345678901234567890 / 2", "61728394506172839450617283945 / 1"},
	} {
		x, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", test.in, err)
			continue
		}
		if got := x.String(); got != test.want {
			t.Errorf("Parse(%q) = %s; want %s", test.in, got, test.want)
		}
		checkCanonical(t, x)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		in   string
		want error
	}{
		{"", ErrFormat},
		{"1", ErrFormat},
		{"1/2", ErrFormat},       // missing spaces around the slash
		{"1 / 2 / 3", ErrFormat}, // too many segments
		{"a / b", ErrFormat},
		{"1 /  2", ErrFormat}, // extra space is not part of an integer
		{"1.5 / 2", ErrFormat},
		{"1 / ", ErrFormat},
		{"5 / 0", ErrZeroDenominator},
		{"-5 / 0", ErrZeroDenominator},
	} {
		if _, err := Parse(test.in); !errors.Is(err, test.want) {
			t.Errorf("Parse(%q): got %v; want %v", test.in, err, test.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0 / 1", "1 / 1", "-1 / 1", "1 / 2", "-1 / 2", "22 / 7", "-355 / 113",
		"123456789012345678901234567890 / 77777777777777777777",
	} {
		v := MustParse(s)
		got, err := Parse(v.String())
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", v.String(), err)
			continue
		}
		if !got.Equal(v) {
			t.Errorf("round trip of %s produced %s", v, got)
		}
	}
}

func TestFloatString(t *testing.T) {
	for _, test := range []struct {
		in   string
		prec int
		want string
	}{
		{"0 / 1", 5, "0"},
		{"1 / 3", 5, "0.33333"},
		{"1 / 4", 10, "0.25"},
		{"-1 / 2", 5, "-0.5"},
		{"7 / 1", 5, "7"},
		{"-7 / 1", 5, "-7"},
		{"22 / 7", 3, "3.142"},
		{"-22 / 7", 4, "-3.1428"},
		{"1 / 7", 6, "0.142857"},
		{"100 / 3", 2, "33.33"},
		{"-7 / 2", 1, "-3.5"},
		{"7 / 2", 0, "3"},
		{"1 / 3", 0, "0"},
		{"1 / 8", 100, "0.125"},
	} {
		x := MustParse(test.in)
		if got := x.FloatString(test.prec); got != test.want {
			t.Errorf("(%s).FloatString(%d) = %q; want %q", test.in, test.prec, got, test.want)
		}
	}

	// a non-terminating expansion runs to the full precision requested
	if got, want := MustParse("1 / 3").FloatString(DefaultPrec), "0."+strings.Repeat("3", 100); got != want {
		t.Errorf("(1 / 3).FloatString(DefaultPrec) = %q; want %q", got, want)
	}
}

func TestAppend(t *testing.T) {
	buf := []byte("x=")
	buf = MustParse("-1 / 4").Append(buf, 5)
	if got := string(buf); got != "x=-0.25" {
		t.Errorf("Append = %q; want %q", got, "x=-0.25")
	}
}

func TestFormat(t *testing.T) {
	x := MustParse("22 / 7")
	for _, test := range []struct{ format, want string }{
		{"%v", "22 / 7"},
		{"%s", "22 / 7"},
		{"%.3f", "3.142"},
		{"%d", "3"},
	} {
		if got := fmt.Sprintf(test.format, x); got != test.want {
			t.Errorf("Sprintf(%q, 22 / 7) = %q; want %q", test.format, got, test.want)
		}
	}
	if got := fmt.Sprintf("%f", MustParse("1 / 4")); got != "0.25" {
		t.Errorf("Sprintf(%%f, 1 / 4) = %q; want %q", got, "0.25")
	}
	if got := fmt.Sprintf("%x", x); !strings.Contains(got, "%!x") {
		t.Errorf("Sprintf(%%x, 22 / 7) = %q; want a verb error", got)
	}
}

func TestScan(t *testing.T) {
	for _, test := range []struct{ in, want string }{
		{"1 / 2", "1 / 2"},
		{"-3/4", "-3 / 4"},
		{"4 / 8", "1 / 2"},
	} {
		var x Rat
		if _, err := fmt.Sscan(test.in, &x); err != nil {
			t.Errorf("Sscan(%q): unexpected error %v", test.in, err)
			continue
		}
		if got := x.String(); got != test.want {
			t.Errorf("Sscan(%q) = %s; want %s", test.in, got, test.want)
		}
	}

	var x Rat
	if _, err := fmt.Sscan("foo", &x); err == nil {
		t.Errorf("Sscan(\"foo\") did not fail")
	}
	if _, err := fmt.Sscan("1 / 0", &x); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("Sscan(\"1 / 0\"): got %v; want ErrZeroDenominator", err)
	}
}
