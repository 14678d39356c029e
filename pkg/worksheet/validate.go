package worksheet

import (
	"fmt"

	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/ChicagoDave/measure/pkg/validation"
	"github.com/shopspring/decimal"
)

// MaxPrecision bounds Worksheet.Precision.
const MaxPrecision = 64

// Validate checks a worksheet before evaluation. Evaluate refuses any
// worksheet whose report is not valid.
func Validate(ws *Worksheet) *validation.Report {
	r := validation.NewReport()

	if ws.Precision != nil && (*ws.Precision < 0 || *ws.Precision > MaxPrecision) {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "precision out of range",
			Path:        "precision",
			ActualValue: *ws.Precision,
			Expected:    fmt.Sprintf("0..%d", MaxPrecision),
		})
	}

	if len(ws.Steps) == 0 {
		r.AddInfo(validation.Result{
			Level:   validation.LevelSchema,
			Message: "worksheet has no steps",
			Path:    "steps",
		})
	}

	seen := make(map[string]string)
	for i, s := range ws.Steps {
		r.Merge(ValidateStep(s, fmt.Sprintf("steps[%d]", i), seen))
	}

	return r
}

// ValidateStep checks one step; path prefixes every result. seen maps step
// names already taken to their paths and is updated; nil skips the
// uniqueness check.
func ValidateStep(s Step, path string, seen map[string]string) *validation.Report {
	r := validation.NewReport()
	if seen != nil {
		validateName(s, path, seen, r)
	}
	validateStep(s, path, r)
	return r
}

func validateName(s Step, path string, seen map[string]string, r *validation.Report) {
	if s.Name == "" {
		r.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "step name is required",
			Path:    path + ".name",
		})
		return
	}
	if first, dup := seen[s.Name]; dup {
		r.AddError(validation.Result{
			Level:        validation.LevelSchema,
			Message:      fmt.Sprintf("duplicate step name %q", s.Name),
			Step:         s.Name,
			Path:         path + ".name",
			ConflictWith: first,
		})
		return
	}
	seen[s.Name] = path
}

func validateStep(s Step, path string, r *validation.Report) {
	if !s.Op.Known() {
		suggestions := make([]string, len(Ops))
		for i, op := range Ops {
			suggestions[i] = string(op)
		}
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown op %q", s.Op),
			Step:        s.Name,
			Path:        path + ".op",
			ActualValue: s.Op,
			Suggestions: suggestions,
		})
		return
	}

	family, ok := validateOperand(s, s.Value, path+".value", r)

	if s.Op.needsTarget() {
		validateUnitRef(s, s.To, path+".to", family, ok, r)
		if s.Op == OpConvert && s.To == s.Value.Unit && ok {
			r.AddWarning(validation.Result{
				Level:   validation.LevelConversion,
				Message: "conversion to the same unit is a no-op",
				Step:    s.Name,
				Path:    path + ".to",
			})
		}
	} else if s.To != "" {
		ignored(s, path+".to", r)
	}

	if s.Op.needsOther() {
		if s.Other == nil {
			r.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("%s requires an other operand", s.Op),
				Step:    s.Name,
				Path:    path + ".other",
			})
		} else if otherFamily, otherOK := validateOperand(s, *s.Other, path+".other", r); ok && otherOK && otherFamily != family {
			r.AddError(validation.Result{
				Level:        validation.LevelConversion,
				Message:      fmt.Sprintf("cannot combine %s with %s", family, otherFamily),
				Step:         s.Name,
				Path:         path + ".other.unit",
				ActualValue:  s.Other.Unit,
				ConflictWith: path + ".value.unit",
			})
		}
	} else if s.Other != nil {
		ignored(s, path+".other", r)
	}

	if s.Op.needsScalar() {
		validateScalar(s, path+".scalar", r)
	} else if s.Scalar != "" {
		ignored(s, path+".scalar", r)
	}
}

// validateOperand checks magnitude and unit and returns the unit's family.
func validateOperand(s Step, o Operand, path string, r *validation.Report) (unit.Family, bool) {
	if _, err := decimal.NewFromString(o.Magnitude); err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "magnitude must be a decimal literal",
			Step:        s.Name,
			Path:        path + ".magnitude",
			ActualValue: o.Magnitude,
			Expected:    "e.g. \"12.5\"",
		})
	}
	family, ok := unit.FamilyOf(o.Unit)
	if !ok {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown unit %q", o.Unit),
			Step:        s.Name,
			Path:        path + ".unit",
			ActualValue: o.Unit,
			Suggestions: unitSymbols(),
		})
	}
	return family, ok
}

func validateUnitRef(s Step, symbol, path string, family unit.Family, familyKnown bool, r *validation.Report) {
	if symbol == "" {
		r.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: fmt.Sprintf("%s requires a target unit", s.Op),
			Step:    s.Name,
			Path:    path,
		})
		return
	}
	target, ok := unit.FamilyOf(symbol)
	if !ok {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown unit %q", symbol),
			Step:        s.Name,
			Path:        path,
			ActualValue: symbol,
			Suggestions: unitSymbols(),
		})
		return
	}
	if familyKnown && target != family {
		r.AddError(validation.Result{
			Level:        validation.LevelConversion,
			Message:      fmt.Sprintf("cannot convert %s to %s", family, target),
			Step:         s.Name,
			Path:         path,
			ActualValue:  symbol,
			ConflictWith: "value.unit",
		})
	}
}

func validateScalar(s Step, path string, r *validation.Report) {
	d, err := decimal.NewFromString(s.Scalar)
	if err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("%s requires a decimal scalar", s.Op),
			Step:        s.Name,
			Path:        path,
			ActualValue: s.Scalar,
		})
		return
	}
	if s.Op == OpDiv && d.IsZero() {
		r.AddError(validation.Result{
			Level:   validation.LevelConversion,
			Message: "division by zero",
			Step:    s.Name,
			Path:    path,
		})
	}
}

func ignored(s Step, path string, r *validation.Report) {
	r.AddWarning(validation.Result{
		Level:   validation.LevelSchema,
		Message: fmt.Sprintf("field is ignored by %s", s.Op),
		Step:    s.Name,
		Path:    path,
	})
}

func unitSymbols() []string {
	var out []string
	for _, u := range unit.LengthUnits() {
		out = append(out, u.Symbol())
	}
	for _, u := range unit.WeightUnits() {
		out = append(out, u.Symbol())
	}
	return out
}
