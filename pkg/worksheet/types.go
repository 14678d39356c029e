// Package worksheet loads, validates and evaluates lists of measurement
// operations written in YAML or HCL.
package worksheet

// Op names a measurement operation.
type Op string

const (
	OpConvert  Op = "convert"
	OpPlus     Op = "plus"
	OpMinus    Op = "minus"
	OpTimes    Op = "times"
	OpDiv      Op = "div"
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
)

// Ops lists every supported operation.
var Ops = []Op{OpConvert, OpPlus, OpMinus, OpTimes, OpDiv, OpAdd, OpSubtract}

// Known reports whether o is a supported operation.
func (o Op) Known() bool {
	for _, k := range Ops {
		if o == k {
			return true
		}
	}
	return false
}

func (o Op) needsTarget() bool { return o == OpConvert || o == OpAdd || o == OpSubtract }
func (o Op) needsOther() bool  { return o == OpPlus || o == OpMinus || o == OpAdd || o == OpSubtract }
func (o Op) needsScalar() bool { return o == OpTimes || o == OpDiv }

// Worksheet is an ordered list of steps. Precision is the number of
// fraction digits div keeps; nil means measure.DivisionPrecision.
type Worksheet struct {
	Version   string `yaml:"version" json:"version"`
	Precision *int   `yaml:"precision" json:"precision,omitempty"`
	Steps     []Step `yaml:"steps" json:"steps"`
}

// Operand is a magnitude written as a decimal literal plus a unit symbol.
type Operand struct {
	Magnitude string `yaml:"magnitude" json:"magnitude"`
	Unit      string `yaml:"unit" json:"unit"`
}

// Step is one operation. Which of To, Other and Scalar are used depends on Op.
type Step struct {
	Name   string   `yaml:"name" json:"name"`
	Op     Op       `yaml:"op" json:"op"`
	Value  Operand  `yaml:"value" json:"value"`
	Other  *Operand `yaml:"other" json:"other,omitempty"`
	To     string   `yaml:"to" json:"to,omitempty"`
	Scalar string   `yaml:"scalar" json:"scalar,omitempty"`
}

// Outcome is the result of one evaluated step.
type Outcome struct {
	Step      string `json:"step"`
	Op        Op     `json:"op"`
	Result    string `json:"result"`
	Magnitude string `json:"magnitude"`
	Unit      string `json:"unit"`
}
