package validator

// Contains requires the value (a string or a slice) to contain Value.
type Contains struct{ Value any }

func (Contains) MessageKey() string { return "validation.contains" }
func (c Contains) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// ContainsAll requires every element of Values to be contained.
type ContainsAll struct{ Values any }

func (ContainsAll) MessageKey() string { return "validation.contains_all" }
func (c ContainsAll) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// ContainsAny requires at least one element of Values to be contained.
type ContainsAny struct{ Values any }

func (ContainsAny) MessageKey() string { return "validation.contains_any" }
func (c ContainsAny) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// NotContain requires Value to be absent.
type NotContain struct{ Value any }

func (NotContain) MessageKey() string { return "validation.not_contain" }
func (c NotContain) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// NotContainAll requires at least one element of Values to be absent.
type NotContainAll struct{ Values any }

func (NotContainAll) MessageKey() string { return "validation.not_contain_all" }
func (c NotContainAll) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// NotContainAny requires every element of Values to be absent.
type NotContainAny struct{ Values any }

func (NotContainAny) MessageKey() string { return "validation.not_contain_any" }
func (c NotContainAny) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// Size bounds a length: runes for strings, elements for slices and maps.
// Use NoMin or NoMax for an open bound.
type Size struct{ Min, Max int }

func (c Size) MessageKey() string {
	key, _ := boundedKey("validation.size", c.Min, c.Max)
	return key
}

func (c Size) Params() []Param {
	_, params := boundedKey("validation.size", c.Min, c.Max)
	return params
}
