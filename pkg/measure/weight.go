package measure

import (
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/shopspring/decimal"
)

// Weight is a measurement of mass.
type Weight = Measurement[unit.WeightUnit]

// WeightTable sizes every weight unit in grams, using the international
// avoirdupois pound (1 lb = 453.59237 g, 1 oz = 1/16 lb).
var WeightTable = NewTable(unit.FamilyWeight, map[unit.WeightUnit]string{
	unit.G:  "1",
	unit.KG: "1000",
	unit.LB: "453.59237",
	unit.OZ: "28.349523125",
})

// Constructors bind a magnitude to one fixed unit.
func Gram(v decimal.Decimal) Weight     { return Make(unit.G, v) }
func Kilogram(v decimal.Decimal) Weight { return Make(unit.KG, v) }
func Pound(v decimal.Decimal) Weight    { return Make(unit.LB, v) }
func Ounce(v decimal.Decimal) Weight    { return Make(unit.OZ, v) }
