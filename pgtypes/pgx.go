package pgtypes

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/avdva/pgnumeric"
)

// FromPgx encodes a pgx numeric.
// NaN is kept, infinities are not supported.
func FromPgx(n pgtype.Numeric) (pgnumeric.Numeric, error) {
	switch {
	case !n.Valid:
		return nil, ErrNull
	case n.NaN:
		return pgnumeric.NaN{}, nil
	case n.InfinityModifier != pgtype.Finite:
		return nil, fmt.Errorf("infinity modifier %d: %w", n.InfinityModifier, pgnumeric.ErrUnsupportedValue)
	}
	i := n.Int
	if i == nil {
		i = new(big.Int)
	}
	return pgnumeric.Encode(decimal.NewFromBigInt(i, n.Exp)), nil
}

// ToPgx decodes a wire value into a valid pgx numeric.
func ToPgx(n pgnumeric.Numeric) (pgtype.Numeric, error) {
	if _, ok := n.(pgnumeric.NaN); ok {
		return pgtype.Numeric{NaN: true, Valid: true}, nil
	}
	d, err := pgnumeric.Decode(n)
	if err != nil {
		return pgtype.Numeric{}, err
	}
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}, nil
}
