// Package unit defines the closed sets of length and weight units.
package unit

// Family names the kind of quantity a unit measures.
type Family string

const (
	FamilyLength Family = "length"
	FamilyWeight Family = "weight"
)

// Descriptor is the constraint satisfied by every unit family.
// Values are compared by variant tag.
type Descriptor interface {
	comparable
	Name() string
	Symbol() string
	Family() Family
	Valid() bool
}

type info struct {
	name   string
	symbol string
}

// LengthUnit identifies a unit of length.
type LengthUnit int

const (
	MM LengthUnit = iota
	CM
	M
	KM
	IN
	FT
	MI
)

var lengthInfo = [...]info{
	MM: {"millimeter", "mm"},
	CM: {"centimeter", "cm"},
	M:  {"meter", "m"},
	KM: {"kilometer", "km"},
	IN: {"inch", "in"},
	FT: {"foot", "ft"},
	MI: {"mile", "mi"},
}

// Valid reports whether u is one of the declared length units.
func (u LengthUnit) Valid() bool { return u >= MM && int(u) < len(lengthInfo) }

// Name returns the human-readable name, e.g. "kilometer".
func (u LengthUnit) Name() string {
	if !u.Valid() {
		return "unknown"
	}
	return lengthInfo[u].name
}

// Symbol returns the short symbol, e.g. "km".
func (u LengthUnit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return lengthInfo[u].symbol
}

func (u LengthUnit) Family() Family { return FamilyLength }

func (u LengthUnit) String() string { return u.Symbol() }

// WeightUnit identifies a unit of weight.
type WeightUnit int

const (
	G WeightUnit = iota
	KG
	LB
	OZ
)

var weightInfo = [...]info{
	G:  {"gram", "g"},
	KG: {"kilogram", "kg"},
	LB: {"pound", "lb"},
	OZ: {"ounce", "oz"},
}

// Valid reports whether u is one of the declared weight units.
func (u WeightUnit) Valid() bool { return u >= G && int(u) < len(weightInfo) }

// Name returns the human-readable name, e.g. "pound".
func (u WeightUnit) Name() string {
	if !u.Valid() {
		return "unknown"
	}
	return weightInfo[u].name
}

// Symbol returns the short symbol, e.g. "lb".
func (u WeightUnit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return weightInfo[u].symbol
}

func (u WeightUnit) Family() Family { return FamilyWeight }

func (u WeightUnit) String() string { return u.Symbol() }

// LengthUnits returns every length unit in declaration order.
func LengthUnits() []LengthUnit {
	out := make([]LengthUnit, len(lengthInfo))
	for i := range lengthInfo {
		out[i] = LengthUnit(i)
	}
	return out
}

// WeightUnits returns every weight unit in declaration order.
func WeightUnits() []WeightUnit {
	out := make([]WeightUnit, len(weightInfo))
	for i := range weightInfo {
		out[i] = WeightUnit(i)
	}
	return out
}

// LookupLength returns the length unit whose symbol is exactly symbol.
func LookupLength(symbol string) (LengthUnit, bool) {
	return lookup(LengthUnits(), symbol)
}

// LookupWeight returns the weight unit whose symbol is exactly symbol.
func LookupWeight(symbol string) (WeightUnit, bool) {
	return lookup(WeightUnits(), symbol)
}

func lookup[U Descriptor](units []U, symbol string) (U, bool) {
	for _, u := range units {
		if u.Symbol() == symbol {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// FamilyOf returns the family that owns symbol, if any.
func FamilyOf(symbol string) (Family, bool) {
	if _, ok := LookupLength(symbol); ok {
		return FamilyLength, true
	}
	if _, ok := LookupWeight(symbol); ok {
		return FamilyWeight, true
	}
	return "", false
}
