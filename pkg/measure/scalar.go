package measure

import (
	"math"

	"github.com/shopspring/decimal"
)

// Integer is any Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Scalar converts an integer into a decimal scalar for Times and Div.
func Scalar[N Integer](n N) decimal.Decimal {
	if n < 0 {
		return decimal.NewFromInt(int64(n))
	}
	return decimal.NewFromUint64(uint64(n))
}

// FloatScalar converts a float into a decimal scalar using the shortest
// decimal that round-trips to f.
func FloatScalar(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrNotFinite
	}
	return decimal.NewFromFloat(f), nil
}
