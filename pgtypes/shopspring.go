package pgtypes

import (
	"fmt"

	jackc_pgtype "github.com/jackc/pgtype"
	shopspring "github.com/jackc/pgtype/ext/shopspring-numeric"

	"github.com/avdva/pgnumeric"
)

// FromShopspring encodes a present shopspring numeric.
func FromShopspring(n shopspring.Numeric) (pgnumeric.Numeric, error) {
	if n.Status != jackc_pgtype.Present {
		return nil, ErrNull
	}
	return pgnumeric.Encode(n.Decimal), nil
}

// ToShopspring decodes a wire value. NaN has no shopspring representation.
func ToShopspring(n pgnumeric.Numeric) (shopspring.Numeric, error) {
	d, err := pgnumeric.Decode(n)
	if err != nil {
		return shopspring.Numeric{Status: jackc_pgtype.Undefined}, fmt.Errorf("to shopspring: %w", err)
	}
	return shopspring.Numeric{Decimal: d, Status: jackc_pgtype.Present}, nil
}
