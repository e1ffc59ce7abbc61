// Copyright 2020 Aleksandr Demakin. All rights reserved.

package pgnumeric

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/pgnumeric/internal/mathutil"
)

// Encode converts a decimal into a wire value.
// Zero is always encoded as Zero(), whatever its exponent is.
// Positive exponents are folded into the digits, so the resulting scale is never negative.
func Encode(d decimal.Decimal) Numeric {
	if d.IsZero() {
		return Zero()
	}
	integer := new(big.Int).Abs(d.Coefficient())
	exp := d.Exponent()
	if exp > 0 {
		integer.Mul(integer, mu.Pow10Big(int(exp)))
		exp = 0
	}
	scale := uint16(-exp)

	// the decimal point must lie on a digit boundary.
	pad := mu.DecDigits - int(scale%mu.DecDigits)
	integer.Mul(integer, mu.Pow10Big(pad))

	digits := mu.Digits(integer)
	digitsAfterDecimal := int(scale/mu.DecDigits) + 1
	weight := len(digits) - digitsAfterDecimal - 1
	indexOfDecimal := weight + 1
	if indexOfDecimal < 0 {
		indexOfDecimal = 0
	}
	relevant := len(digits)
	for relevant > indexOfDecimal && digits[relevant-1] == 0 {
		relevant--
	}
	digits = digits[:relevant]

	if d.Sign() < 0 {
		return Negative{Weight: int16(weight), Scale: scale, Digits: digits}
	}
	return Positive{Weight: int16(weight), Scale: scale, Digits: digits}
}

// EncodeString parses a decimal string and encodes it.
func EncodeString(s string) (Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return Encode(d), nil
}

// MustEncodeString is like EncodeString, but panics on error.
func MustEncodeString(s string) Numeric {
	n, err := EncodeString(s)
	if err != nil {
		panic(err)
	}
	return n
}
