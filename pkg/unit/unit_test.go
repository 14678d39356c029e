package unit

import "testing"

func TestLengthDescriptors(t *testing.T) {
	tests := []struct {
		u      LengthUnit
		name   string
		symbol string
	}{
		{MM, "millimeter", "mm"},
		{CM, "centimeter", "cm"},
		{M, "meter", "m"},
		{KM, "kilometer", "km"},
		{IN, "inch", "in"},
		{FT, "foot", "ft"},
		{MI, "mile", "mi"},
	}
	for _, tt := range tests {
		if tt.u.Name() != tt.name {
			t.Errorf("%v.Name() = %q, want %q", tt.u, tt.u.Name(), tt.name)
		}
		if tt.u.Symbol() != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.u, tt.u.Symbol(), tt.symbol)
		}
		if tt.u.Family() != FamilyLength {
			t.Errorf("%v.Family() = %q, want length", tt.u, tt.u.Family())
		}
	}
	if got := len(LengthUnits()); got != 7 {
		t.Errorf("LengthUnits() has %d entries, want 7", got)
	}
}

func TestWeightDescriptors(t *testing.T) {
	tests := []struct {
		u      WeightUnit
		name   string
		symbol string
	}{
		{G, "gram", "g"},
		{KG, "kilogram", "kg"},
		{LB, "pound", "lb"},
		{OZ, "ounce", "oz"},
	}
	for _, tt := range tests {
		if tt.u.Name() != tt.name || tt.u.Symbol() != tt.symbol {
			t.Errorf("got %s/%s, want %s/%s", tt.u.Name(), tt.u.Symbol(), tt.name, tt.symbol)
		}
	}
	if got := len(WeightUnits()); got != 4 {
		t.Errorf("WeightUnits() has %d entries, want 4", got)
	}
}

func TestInvalidUnit(t *testing.T) {
	u := LengthUnit(42)
	if u.Valid() {
		t.Error("LengthUnit(42) should be invalid")
	}
	if u.Symbol() != "?" {
		t.Errorf("invalid symbol = %q, want ?", u.Symbol())
	}
	if WeightUnit(-1).Valid() {
		t.Error("WeightUnit(-1) should be invalid")
	}
}

func TestLookup(t *testing.T) {
	if u, ok := LookupLength("km"); !ok || u != KM {
		t.Errorf("LookupLength(km) = %v, %v", u, ok)
	}
	if _, ok := LookupLength("KM"); ok {
		t.Error("lookup must be an exact symbol match")
	}
	if u, ok := LookupWeight("oz"); !ok || u != OZ {
		t.Errorf("LookupWeight(oz) = %v, %v", u, ok)
	}
	if _, ok := LookupWeight("m"); ok {
		t.Error("meter is not a weight unit")
	}
	if f, ok := FamilyOf("lb"); !ok || f != FamilyWeight {
		t.Errorf("FamilyOf(lb) = %q, %v", f, ok)
	}
	if _, ok := FamilyOf("furlong"); ok {
		t.Error("furlong should not resolve")
	}
}
