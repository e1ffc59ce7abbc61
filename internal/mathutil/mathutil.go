package mathutil

import (
	"fmt"
	"math/big"
)

// NBase is the base of a NUMERIC digit.
const NBase = 10000

// DecDigits is the number of decimal digits packed into one NUMERIC digit.
const DecDigits = 4

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	bigTen   = big.NewInt(10)
	bigNBase = big.NewInt(NBase)
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Pow10Big returns 10^pow as a big integer. pow must not be negative.
func Pow10Big(pow int) *big.Int {
	if p := Pow10(pow); p != 0 {
		return new(big.Int).SetUint64(p)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// Base10000 produces the base-10000 digits of a non-negative integer,
// least significant first. It can be consumed only once.
type Base10000 struct {
	v    *big.Int
	rem  big.Int
	done bool
}

// NewBase10000 returns a digit producer for v. v is copied, so the caller keeps ownership of it.
// NewBase10000 panics if v is negative.
func NewBase10000(v *big.Int) *Base10000 {
	if v.Sign() < 0 {
		panic(fmt.Sprintf("mathutil: negative input %s", v))
	}
	return &Base10000{v: new(big.Int).Set(v)}
}

// Next returns the next digit. ok is false once all the digits were returned.
// Zero has exactly one digit.
func (b *Base10000) Next() (digit int16, ok bool) {
	if b.done {
		return 0, false
	}
	b.v.QuoRem(b.v, bigNBase, &b.rem)
	if b.v.Sign() == 0 {
		b.done = true
		b.v = nil
	}
	if !b.rem.IsInt64() || b.rem.Int64() < 0 || b.rem.Int64() >= NBase {
		panic(fmt.Sprintf("mathutil: digit %s out of range", &b.rem))
	}
	return int16(b.rem.Int64()), true
}

// Digits returns base-10000 digits of v, most significant first.
func Digits(v *big.Int) []int16 {
	var result []int16
	it := NewBase10000(v)
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		result = append(result, d)
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}
