package validator

// Less requires the value to be less than Value.
type Less struct{ Value any }

func (Less) MessageKey() string { return "validation.less" }
func (c Less) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// LessOrEqual requires the value to be less than or equal to Value.
type LessOrEqual struct{ Value any }

func (LessOrEqual) MessageKey() string { return "validation.less_or_equal" }
func (c LessOrEqual) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// Greater requires the value to be greater than Value.
type Greater struct{ Value any }

func (Greater) MessageKey() string { return "validation.greater" }
func (c Greater) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// GreaterOrEqual requires the value to be greater than or equal to Value.
type GreaterOrEqual struct{ Value any }

func (GreaterOrEqual) MessageKey() string { return "validation.greater_or_equal" }
func (c GreaterOrEqual) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// Between requires Start <= value <= End.
type Between struct{ Start, End any }

func (Between) MessageKey() string { return "validation.between" }
func (c Between) Params() []Param {
	return []Param{{Name: "start", Value: c.Start}, {Name: "end", Value: c.End}}
}

// NotBetween requires the value to fall outside [Start, End].
type NotBetween struct{ Start, End any }

func (NotBetween) MessageKey() string { return "validation.not_between" }
func (c NotBetween) Params() []Param {
	return []Param{{Name: "start", Value: c.Start}, {Name: "end", Value: c.End}}
}

// IntegerDigits bounds the number of digits before the decimal separator.
// Use NoMin or NoMax for an open bound.
type IntegerDigits struct{ Min, Max int }

func (c IntegerDigits) MessageKey() string {
	key, _ := boundedKey("validation.integer_digits", c.Min, c.Max)
	return key
}

func (c IntegerDigits) Params() []Param {
	_, params := boundedKey("validation.integer_digits", c.Min, c.Max)
	return params
}

// DecimalDigits bounds the number of digits after the decimal separator.
// Use NoMin or NoMax for an open bound.
type DecimalDigits struct{ Min, Max int }

func (c DecimalDigits) MessageKey() string {
	key, _ := boundedKey("validation.decimal_digits", c.Min, c.Max)
	return key
}

func (c DecimalDigits) Params() []Param {
	_, params := boundedKey("validation.decimal_digits", c.Min, c.Max)
	return params
}
