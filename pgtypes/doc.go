// Package pgtypes converts wire values to and from the numeric types of
// other libraries: pgx v5 pgtype.Numeric, the shopspring extension of
// jackc/pgtype, and robaho/fixed.
package pgtypes

import "errors"

// ErrNull is returned when a NULL value is converted.
var ErrNull = errors.New("numeric is null")
