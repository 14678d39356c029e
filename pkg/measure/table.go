package measure

import (
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/shopspring/decimal"
)

// ConversionPrecision is the number of fraction digits kept when a
// conversion quotient does not terminate (e.g. inches to miles).
const ConversionPrecision int32 = 24

// Table holds the exact size of every unit of one family, expressed in a
// shared reference unit. Any pair converts as magnitude*size(from)/size(to),
// so the table is complete as soon as every unit has a size.
type Table[U unit.Descriptor] struct {
	family unit.Family
	sizes  map[U]decimal.Decimal
}

// NewTable builds a table from unit sizes given as decimal literals.
// It panics on a malformed or non-positive literal; tables are package-level
// constants and a bad entry is a programming error.
func NewTable[U unit.Descriptor](family unit.Family, sizes map[U]string) *Table[U] {
	t := &Table[U]{family: family, sizes: make(map[U]decimal.Decimal, len(sizes))}
	for u, lit := range sizes {
		d := decimal.RequireFromString(lit)
		if !d.IsPositive() {
			panic("measure: unit size must be positive: " + u.Symbol())
		}
		t.sizes[u] = d
	}
	return t
}

// Family returns the unit family the table covers.
func (t *Table[U]) Family() unit.Family { return t.family }

// Size returns the size of u in the table's reference unit.
func (t *Table[U]) Size(u U) (decimal.Decimal, bool) {
	d, ok := t.sizes[u]
	return d, ok
}

// Convert translates magnitude from one unit to another.
// Converting a unit to itself returns magnitude unchanged.
func (t *Table[U]) Convert(magnitude decimal.Decimal, from, to U) (decimal.Decimal, error) {
	if from == to {
		return magnitude, nil
	}
	if t == nil {
		return decimal.Decimal{}, unsupported(from, to)
	}
	fromSize, ok := t.sizes[from]
	if !ok {
		return decimal.Decimal{}, unsupported(from, to)
	}
	toSize, ok := t.sizes[to]
	if !ok {
		return decimal.Decimal{}, unsupported(from, to)
	}
	return magnitude.Mul(fromSize).DivRound(toSize, ConversionPrecision), nil
}

func unsupported[U unit.Descriptor](from, to U) error {
	return &UnsupportedConversionError{
		Family: from.Family(),
		From:   from.Symbol(),
		To:     to.Symbol(),
	}
}

// tableFor returns the package table for the family of U, or nil when U is
// not a known family.
func tableFor[U unit.Descriptor]() *Table[U] {
	var zero U
	switch any(zero).(type) {
	case unit.LengthUnit:
		return any(LengthTable).(*Table[U])
	case unit.WeightUnit:
		return any(WeightTable).(*Table[U])
	}
	return nil
}
