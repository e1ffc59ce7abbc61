package pgtypes

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	jackc_pgtype "github.com/jackc/pgtype"
	shopspring "github.com/jackc/pgtype/ext/shopspring-numeric"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/pgnumeric"
)

func TestFromPgx(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   pgtype.Numeric
		res pgnumeric.Numeric
		err error
	}{
		{
			pgtype.Numeric{Int: big.NewInt(-123456), Exp: -3, Valid: true},
			pgnumeric.Negative{Weight: 0, Scale: 3, Digits: []int16{123, 4560}},
			nil,
		},
		{
			pgtype.Numeric{Int: big.NewInt(1), Exp: 4, Valid: true},
			pgnumeric.Positive{Weight: 1, Scale: 0, Digits: []int16{1, 0}},
			nil,
		},
		{pgtype.Numeric{Valid: true}, pgnumeric.Zero(), nil},
		{pgtype.Numeric{NaN: true, Valid: true}, pgnumeric.NaN{}, nil},
		{pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, nil, pgnumeric.ErrUnsupportedValue},
		{pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}, nil, pgnumeric.ErrUnsupportedValue},
		{pgtype.Numeric{Int: big.NewInt(1)}, nil, ErrNull},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := FromPgx(test.n)
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, res)
			}
		})
	}
}

func TestToPgx(t *testing.T) {
	a := assert.New(t)
	n, err := ToPgx(pgnumeric.MustEncodeString("-0.1"))
	require.NoError(t, err)
	a.True(n.Valid)
	a.Equal(pgtype.Finite, n.InfinityModifier)
	a.Equal("-1000", n.Int.String())
	a.Equal(int32(-4), n.Exp)

	n, err = ToPgx(pgnumeric.NaN{})
	require.NoError(t, err)
	a.Equal(pgtype.Numeric{NaN: true, Valid: true}, n)

	_, err = ToPgx(nil)
	a.True(errors.Is(err, pgnumeric.ErrUnsupportedValue))
}

func TestShopspring(t *testing.T) {
	a := assert.New(t)
	n, err := FromShopspring(shopspring.Numeric{Decimal: decimal.RequireFromString("1.10"), Status: jackc_pgtype.Present})
	require.NoError(t, err)
	a.Equal(pgnumeric.Positive{Weight: 0, Scale: 2, Digits: []int16{1, 1000}}, n)

	_, err = FromShopspring(shopspring.Numeric{Status: jackc_pgtype.Null})
	a.True(errors.Is(err, ErrNull))

	s, err := ToShopspring(n)
	require.NoError(t, err)
	a.Equal(jackc_pgtype.Present, s.Status)
	a.True(decimal.RequireFromString("1.1").Equal(s.Decimal))

	s, err = ToShopspring(pgnumeric.NaN{})
	a.True(errors.Is(err, pgnumeric.ErrUnsupportedValue))
	a.Equal(jackc_pgtype.Undefined, s.Status)
}

func TestFixed(t *testing.T) {
	a := assert.New(t)
	for i, s := range []string{"0", "1", "-1.25", "12345.6789", "0.0000001"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := FromFixed(fixed.NewS(s))
			require.NoError(t, err)
			d, err := pgnumeric.Decode(n)
			require.NoError(t, err)
			a.True(decimal.RequireFromString(s).Equal(d), "%s != %s", s, d)

			f, err := ToFixed(n)
			require.NoError(t, err)
			a.Equal(fixed.NewS(s), f)
		})
	}

	n, err := FromFixed(fixed.NaN)
	require.NoError(t, err)
	a.Equal(pgnumeric.NaN{}, n)

	f, err := ToFixed(pgnumeric.NaN{})
	require.NoError(t, err)
	a.True(f.IsNaN())

	_, err = ToFixed(nil)
	a.True(errors.Is(err, pgnumeric.ErrUnsupportedValue))
}
