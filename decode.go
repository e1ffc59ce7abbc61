// Copyright 2020 Aleksandr Demakin. All rights reserved.

package pgnumeric

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/pgnumeric/internal/mathutil"
)

var bigNBase = big.NewInt(mu.NBase)

// Decode converts a wire value into a decimal.
// It returns ErrUnsupportedValue for NaN.
//
// Scale is not used to drop insignificant digits, so every digit
// becomes a part of the result: 0.01 stored as [100] with weight -1
// is decoded as 0.0100.
func Decode(n Numeric) (decimal.Decimal, error) {
	var (
		weight int16
		digits []int16
		neg    bool
	)
	switch v := n.(type) {
	case Positive:
		weight, digits = v.Weight, v.Digits
	case Negative:
		weight, digits, neg = v.Weight, v.Digits, true
	case NaN:
		return decimal.Zero, fmt.Errorf("decode NaN: %w", ErrUnsupportedValue)
	default:
		return decimal.Zero, fmt.Errorf("decode %T: %w", n, ErrUnsupportedValue)
	}

	result := new(big.Int)
	var digit big.Int
	for _, d := range digits {
		result.Mul(result, bigNBase)
		result.Add(result, digit.SetInt64(int64(d)))
	}
	// the first digit got factor 10000^(len(digits)-1), but should get 10000^weight.
	exp := mu.DecDigits * (int32(weight) - int32(len(digits)) + 1)
	if neg {
		result.Neg(result)
	}
	return decimal.NewFromBigInt(result, exp), nil
}

// MustDecode is like Decode, but panics on error.
func MustDecode(n Numeric) decimal.Decimal {
	d, err := Decode(n)
	if err != nil {
		panic(err)
	}
	return d
}
