package measure

import (
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/shopspring/decimal"
)

// Length is a measurement of distance.
type Length = Measurement[unit.LengthUnit]

// LengthTable sizes every length unit in meters, using the international
// yard (1 in = 0.0254 m exactly).
var LengthTable = NewTable(unit.FamilyLength, map[unit.LengthUnit]string{
	unit.MM: "0.001",
	unit.CM: "0.01",
	unit.M:  "1",
	unit.KM: "1000",
	unit.IN: "0.0254",
	unit.FT: "0.3048",
	unit.MI: "1609.344",
})

// Constructors bind a magnitude to one fixed unit.
func Millimeter(v decimal.Decimal) Length { return Make(unit.MM, v) }
func Centimeter(v decimal.Decimal) Length { return Make(unit.CM, v) }
func Meter(v decimal.Decimal) Length      { return Make(unit.M, v) }
func Kilometer(v decimal.Decimal) Length  { return Make(unit.KM, v) }
func Inch(v decimal.Decimal) Length       { return Make(unit.IN, v) }
func Foot(v decimal.Decimal) Length       { return Make(unit.FT, v) }
func Mile(v decimal.Decimal) Length       { return Make(unit.MI, v) }
