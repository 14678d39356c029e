package worksheet

import (
	"context"
	"fmt"

	"github.com/ChicagoDave/measure/internal/ctxlog"
	"github.com/ChicagoDave/measure/pkg/measure"
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/shopspring/decimal"
)

// StepError reports the step at which evaluation stopped. Steps before
// Index completed.
type StepError struct {
	Index int
	Step  string
	Err   error
}

func (e *StepError) Error() string { return fmt.Sprintf("step %q: %v", e.Step, e.Err) }

func (e *StepError) Unwrap() error { return e.Err }

// Evaluate validates ws and runs every step in order. It stops at the
// first failing step and returns a *StepError for it.
func Evaluate(ctx context.Context, ws *Worksheet) ([]Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	if err := Validate(ws).Err(); err != nil {
		return nil, fmt.Errorf("invalid worksheet: %w", err)
	}

	places := measure.DivisionPrecision
	if ws.Precision != nil {
		places = int32(*ws.Precision)
	}

	outcomes := make([]Outcome, 0, len(ws.Steps))
	for i, s := range ws.Steps {
		if err := ctx.Err(); err != nil {
			return nil, &StepError{Index: i, Step: s.Name, Err: err}
		}
		out, err := EvaluateStep(s, places)
		if err != nil {
			return nil, &StepError{Index: i, Step: s.Name, Err: err}
		}
		logger.Debug("Step evaluated.", "step", s.Name, "op", s.Op, "result", out.Result)
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// EvaluateStep runs a single step; places is the fraction digits div keeps.
func EvaluateStep(s Step, places int32) (Outcome, error) {
	family, ok := unit.FamilyOf(s.Value.Unit)
	if !ok {
		return Outcome{}, fmt.Errorf("unknown unit %q", s.Value.Unit)
	}
	switch family {
	case unit.FamilyLength:
		return run(s, places, unit.LookupLength)
	case unit.FamilyWeight:
		return run(s, places, unit.LookupWeight)
	}
	return Outcome{}, fmt.Errorf("unknown unit family %q", family)
}

func run[U unit.Descriptor](s Step, places int32, lookup func(string) (U, bool)) (Outcome, error) {
	value, err := operand(s.Value, lookup)
	if err != nil {
		return Outcome{}, fmt.Errorf("value: %w", err)
	}

	var result measure.Measurement[U]
	switch s.Op {
	case OpConvert:
		to, err := unitOf(s.To, lookup)
		if err != nil {
			return Outcome{}, err
		}
		result, err = value.ToUnit(to)
		if err != nil {
			return Outcome{}, err
		}
	case OpPlus, OpMinus, OpAdd, OpSubtract:
		if s.Other == nil {
			return Outcome{}, fmt.Errorf("%s requires an other operand", s.Op)
		}
		other, err := operand(*s.Other, lookup)
		if err != nil {
			return Outcome{}, fmt.Errorf("other: %w", err)
		}
		result, err = combine(s, value, other, lookup)
		if err != nil {
			return Outcome{}, err
		}
	case OpTimes, OpDiv:
		scalar, err := decimal.NewFromString(s.Scalar)
		if err != nil {
			return Outcome{}, fmt.Errorf("scalar: %w", err)
		}
		if s.Op == OpTimes {
			result = value.Times(scalar)
		} else if result, err = value.DivRound(scalar, places); err != nil {
			return Outcome{}, err
		}
	default:
		return Outcome{}, fmt.Errorf("unknown op %q", s.Op)
	}

	return Outcome{
		Step:      s.Name,
		Op:        s.Op,
		Result:    result.String(),
		Magnitude: result.Magnitude().String(),
		Unit:      result.Unit().Symbol(),
	}, nil
}

func combine[U unit.Descriptor](s Step, value, other measure.Measurement[U], lookup func(string) (U, bool)) (measure.Measurement[U], error) {
	switch s.Op {
	case OpPlus:
		return value.Plus(other)
	case OpMinus:
		return value.Minus(other)
	}
	to, err := unitOf(s.To, lookup)
	if err != nil {
		return measure.Measurement[U]{}, err
	}
	if s.Op == OpAdd {
		return value.Add(other, to)
	}
	return value.Subtract(other, to)
}

func operand[U unit.Descriptor](o Operand, lookup func(string) (U, bool)) (measure.Measurement[U], error) {
	u, err := unitOf(o.Unit, lookup)
	if err != nil {
		return measure.Measurement[U]{}, err
	}
	d, err := decimal.NewFromString(o.Magnitude)
	if err != nil {
		return measure.Measurement[U]{}, fmt.Errorf("magnitude %q: %w", o.Magnitude, err)
	}
	return measure.Make(u, d), nil
}

func unitOf[U unit.Descriptor](symbol string, lookup func(string) (U, bool)) (U, error) {
	u, ok := lookup(symbol)
	if !ok {
		var zero U
		return zero, fmt.Errorf("%q is not a %s unit", symbol, zero.Family())
	}
	return u, nil
}
