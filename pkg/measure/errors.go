package measure

import (
	"errors"
	"fmt"

	"github.com/ChicagoDave/measure/pkg/unit"
)

var (
	// ErrUnsupportedConversion matches every *UnsupportedConversionError.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrDivisionByZero is returned by Div and DivRound for a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFinite is returned by FloatScalar for NaN and infinities.
	ErrNotFinite = errors.New("scalar is not finite")
)

// UnsupportedConversionError reports a unit pair with no entry in the
// conversion table. It indicates a missing table entry, not bad input.
type UnsupportedConversionError struct {
	Family unit.Family
	From   string
	To     string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported %s conversion from %q to %q", e.Family, e.From, e.To)
}

// Is lets errors.Is match ErrUnsupportedConversion.
func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}
