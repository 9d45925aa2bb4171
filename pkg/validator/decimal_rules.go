package validator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// HasIntegerDigits bounds the digits before the decimal separator, sign excluded.
// Zero has one integer digit. Use NoMin or NoMax for an open bound.
func HasIntegerDigits(minimum, maximum int) Rule[decimal.Decimal] {
	return Rule[decimal.Decimal]{
		Constraint: constant[decimal.Decimal](IntegerDigits{Min: minimum, Max: maximum}),
		Check: func(v decimal.Decimal) bool {
			integer, _ := splitDigits(v)
			return withinBounds(len(integer), minimum, maximum)
		},
	}
}

// HasDecimalDigits bounds the significant digits after the decimal separator.
// Trailing zeros do not count. Use NoMin or NoMax for an open bound.
func HasDecimalDigits(minimum, maximum int) Rule[decimal.Decimal] {
	return Rule[decimal.Decimal]{
		Constraint: constant[decimal.Decimal](DecimalDigits{Min: minimum, Max: maximum}),
		Check: func(v decimal.Decimal) bool {
			_, fraction := splitDigits(v)
			return withinBounds(len(fraction), minimum, maximum)
		},
	}
}

func splitDigits(v decimal.Decimal) (integer, fraction string) {
	integer, fraction, _ = strings.Cut(v.Abs().String(), ".")
	return integer, fraction
}
