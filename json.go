package pgnumeric

import (
	"encoding/json"
	"fmt"

	mu "github.com/avdva/pgnumeric/internal/mathutil"
)

const (
	signPositive = "positive"
	signNegative = "negative"
	signNaN      = "nan"
)

type jsonNumeric struct {
	Sign   string  `json:"sign"`
	Weight int16   `json:"weight"`
	Scale  uint16  `json:"scale"`
	Digits []int16 `json:"digits"`
}

type jsonNaN struct {
	Sign string `json:"sign"`
}

// MarshalJSON implements json.Marshaler.
// The value is marshaled as {"sign":"positive","weight":0,"scale":0,"digits":[1]}.
func (p Positive) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNumeric{Sign: signPositive, Weight: p.Weight, Scale: p.Scale, Digits: nonNil(p.Digits)})
}

// MarshalJSON implements json.Marshaler.
func (n Negative) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNumeric{Sign: signNegative, Weight: n.Weight, Scale: n.Scale, Digits: nonNil(n.Digits)})
}

// MarshalJSON implements json.Marshaler. NaN is marshaled as {"sign":"nan"}.
func (NaN) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNaN{Sign: signNaN})
}

func nonNil(digits []int16) []int16 {
	if digits == nil {
		return []int16{}
	}
	return digits
}

// ParseJSON parses a wire value marshaled by MarshalJSON.
func ParseJSON(data []byte) (Numeric, error) {
	var jn jsonNumeric
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWireValue, err)
	}
	for i, d := range jn.Digits {
		if d < 0 || d >= mu.NBase {
			return nil, fmt.Errorf("%w: digit %d out of range at pos %d", ErrInvalidWireValue, d, i)
		}
	}
	switch jn.Sign {
	case signPositive:
		return Positive{Weight: jn.Weight, Scale: jn.Scale, Digits: jn.Digits}, nil
	case signNegative:
		return Negative{Weight: jn.Weight, Scale: jn.Scale, Digits: jn.Digits}, nil
	case signNaN:
		return NaN{}, nil
	}
	return nil, fmt.Errorf("%w: unknown sign %q", ErrInvalidWireValue, jn.Sign)
}
