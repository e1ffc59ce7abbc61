// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package pgnumeric converts arbitrary-precision decimals to and from
// the PostgreSQL NUMERIC wire structure: a sign, a weight, a display scale
// and a sequence of base-10000 digits, most significant first.
//
// The value of a positive numeric is
//   sum(digits[i] * 10000^(weight-i))
// Byte framing of the structure is left to the caller.
package pgnumeric

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedValue is returned when a wire value has no decimal representation.
	ErrUnsupportedValue = errors.New("unsupported numeric value")
	// ErrInvalidWireValue is returned when a serialized wire value is malformed.
	ErrInvalidWireValue = errors.New("invalid numeric wire value")
)

// Numeric is a NUMERIC wire value.
// It is one of Positive, Negative or NaN.
type Numeric interface {
	fmt.Stringer
	isNumeric()
}

// Positive is a non-negative numeric.
type Positive struct {
	// Weight is the power of 10000 of the first digit.
	Weight int16
	// Scale is the number of decimal digits after the decimal point.
	Scale  uint16
	Digits []int16
}

// Negative is a negative numeric.
type Negative struct {
	Weight int16
	Scale  uint16
	Digits []int16
}

// NaN is the NUMERIC not-a-number value.
type NaN struct{}

func (Positive) isNumeric() {}
func (Negative) isNumeric() {}
func (NaN) isNumeric() {}

// Zero returns the canonical zero value.
func Zero() Positive {
	return Positive{Weight: 0, Scale: 0, Digits: []int16{0}}
}

// String returns a debug representation of the value.
func (p Positive) String() string {
	return format("Positive", p.Weight, p.Scale, p.Digits)
}

// String returns a debug representation of the value.
func (n Negative) String() string {
	return format("Negative", n.Weight, n.Scale, n.Digits)
}

// String returns "NaN".
func (NaN) String() string {
	return "NaN"
}

func format(tag string, weight int16, scale uint16, digits []int16) string {
	var builder strings.Builder
	builder.WriteString(tag)
	fmt.Fprintf(&builder, "{weight:%d, scale:%d, digits:[", weight, scale)
	for i, d := range digits {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%d", d)
	}
	builder.WriteString("]}")
	return builder.String()
}

// Signum returns -1 for negative values, 1 for positive, and 0 for zeros and NaN.
func Signum(n Numeric) int {
	var (
		digits []int16
		sign   int
	)
	switch v := n.(type) {
	case Positive:
		digits, sign = v.Digits, 1
	case Negative:
		digits, sign = v.Digits, -1
	default:
		return 0
	}
	for _, d := range digits {
		if d != 0 {
			return sign
		}
	}
	return 0
}
