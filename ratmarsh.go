// Copyright 2024 The BigRationalLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Rats.

package bigrational

import (
	"fmt"
	"strconv"
)

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled in the fraction form "a / b", the only external representation
// this package defines.
func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Rat) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("bigrational: cannot unmarshal %q into a Rat: %w", text, err)
	}
	*z = v
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is encoded
// as the fraction form, JSON-quoted.
func (x Rat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (z *Rat) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: rational must be a JSON string: %v", ErrFormat, err)
	}
	return z.UnmarshalText([]byte(s))
}
