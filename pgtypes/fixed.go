package pgtypes

import (
	"fmt"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/pgnumeric"
)

// FromFixed encodes a fixed-point number. fixed.NaN becomes pgnumeric.NaN.
func FromFixed(f fixed.Fixed) (pgnumeric.Numeric, error) {
	if f.IsNaN() {
		return pgnumeric.NaN{}, nil
	}
	d, err := decimal.NewFromString(f.String())
	if err != nil {
		return nil, fmt.Errorf("parse fixed %q: %w", f.String(), err)
	}
	return pgnumeric.Encode(d), nil
}

// ToFixed decodes a wire value into a fixed-point number. pgnumeric.NaN becomes fixed.NaN.
func ToFixed(n pgnumeric.Numeric) (fixed.Fixed, error) {
	if _, ok := n.(pgnumeric.NaN); ok {
		return fixed.NaN, nil
	}
	d, err := pgnumeric.Decode(n)
	if err != nil {
		return fixed.NaN, err
	}
	f, err := fixed.NewSErr(d.String())
	if err != nil {
		return fixed.NaN, fmt.Errorf("new fixed from %s: %w", d, err)
	}
	return f, nil
}
