// Package measure implements immutable decimal quantities of length and
// weight, with table-driven unit conversion and unit-aware arithmetic.
//
// A Measurement pairs a decimal magnitude with a unit from one family.
// Every operation returns a new value; nothing is mutated in place.
//
//	d := measure.Kilometer(decimal.RequireFromString("12.5"))
//	m, err := d.ToUnit(unit.M) // 12500 m
package measure

import (
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of fraction digits Div keeps. The last
// digit is rounded half away from zero.
const DivisionPrecision int32 = 16

// Measurement is a magnitude in a fixed unit of family U.
// The zero value is 0 of the family's first unit.
type Measurement[U unit.Descriptor] struct {
	magnitude decimal.Decimal
	unit      U
}

// Make returns a measurement of magnitude in unit u.
func Make[U unit.Descriptor](u U, magnitude decimal.Decimal) Measurement[U] {
	return Measurement[U]{magnitude: magnitude, unit: u}
}

// Magnitude returns the numeric quantity.
func (m Measurement[U]) Magnitude() decimal.Decimal { return m.magnitude }

// Unit returns the unit the magnitude is expressed in.
func (m Measurement[U]) Unit() U { return m.unit }

// ToUnit returns the equivalent measurement in target.
func (m Measurement[U]) ToUnit(target U) (Measurement[U], error) {
	if target == m.unit {
		return m, nil
	}
	v, err := tableFor[U]().Convert(m.magnitude, m.unit, target)
	if err != nil {
		return Measurement[U]{}, err
	}
	return Make(target, v), nil
}

// Plus returns m + other, expressed in m's unit.
func (m Measurement[U]) Plus(other Measurement[U]) (Measurement[U], error) {
	o, err := other.ToUnit(m.unit)
	if err != nil {
		return Measurement[U]{}, err
	}
	return Make(m.unit, m.magnitude.Add(o.magnitude)), nil
}

// Minus returns m - other, expressed in m's unit. The result may be negative.
func (m Measurement[U]) Minus(other Measurement[U]) (Measurement[U], error) {
	o, err := other.ToUnit(m.unit)
	if err != nil {
		return Measurement[U]{}, err
	}
	return Make(m.unit, m.magnitude.Sub(o.magnitude)), nil
}

// Times scales the magnitude exactly.
func (m Measurement[U]) Times(scalar decimal.Decimal) Measurement[U] {
	return Make(m.unit, m.magnitude.Mul(scalar))
}

// Div divides the magnitude by scalar, rounded to DivisionPrecision places.
func (m Measurement[U]) Div(scalar decimal.Decimal) (Measurement[U], error) {
	return m.DivRound(scalar, DivisionPrecision)
}

// DivRound divides the magnitude by scalar, rounded half away from zero to
// places fraction digits.
func (m Measurement[U]) DivRound(scalar decimal.Decimal, places int32) (Measurement[U], error) {
	if scalar.IsZero() {
		return Measurement[U]{}, ErrDivisionByZero
	}
	return Make(m.unit, m.magnitude.DivRound(scalar, places)), nil
}

// Add converts m to target and then adds other.
func (m Measurement[U]) Add(other Measurement[U], target U) (Measurement[U], error) {
	c, err := m.ToUnit(target)
	if err != nil {
		return Measurement[U]{}, err
	}
	return c.Plus(other)
}

// Subtract converts m to target and then subtracts other.
func (m Measurement[U]) Subtract(other Measurement[U], target U) (Measurement[U], error) {
	c, err := m.ToUnit(target)
	if err != nil {
		return Measurement[U]{}, err
	}
	return c.Minus(other)
}

// Equal reports whether both values carry the same unit and numerically
// equal magnitudes. 1000 g and 1 kg are not Equal; convert first.
func (m Measurement[U]) Equal(other Measurement[U]) bool {
	return m.unit == other.unit && m.magnitude.Equal(other.magnitude)
}

// String renders "<magnitude> <symbol>", e.g. "12.5 km".
func (m Measurement[U]) String() string {
	return m.magnitude.String() + " " + m.unit.Symbol()
}

// Sum adds values into target. An empty slice yields 0 in target.
func Sum[U unit.Descriptor](values []Measurement[U], target U) (Measurement[U], error) {
	total := Make(target, decimal.Zero)
	for _, v := range values {
		var err error
		if total, err = total.Plus(v); err != nil {
			return Measurement[U]{}, err
		}
	}
	return total, nil
}
