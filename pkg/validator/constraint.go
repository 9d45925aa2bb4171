package validator

import "math"

// Constraint describes a single rule for message rendering.
// MessageKey is the dot-separated translation key of the message template and Params fill
// its %{name} placeholders. Implementations are plain comparable-by-value structs.
type Constraint interface {
	MessageKey() string
	Params() []Param
}

// Param is a named constraint parameter.
type Param struct {
	Name  string
	Value any
}

// Bound sentinels for Size, IntegerDigits and DecimalDigits.
const (
	NoMin = math.MinInt
	NoMax = math.MaxInt
)

// boundedKey picks the message key variant for a [min, max] pair, so that an open bound is
// never rendered.
func boundedKey(key string, minimum, maximum int) (string, []Param) {
	switch {
	case minimum != NoMin && maximum != NoMax:
		return key, []Param{{Name: "min", Value: minimum}, {Name: "max", Value: maximum}}
	case minimum != NoMin:
		return key + ".min", []Param{{Name: "min", Value: minimum}}
	case maximum != NoMax:
		return key + ".max", []Param{{Name: "max", Value: maximum}}
	default:
		return key, []Param{{Name: "min", Value: minimum}, {Name: "max", Value: maximum}}
	}
}
