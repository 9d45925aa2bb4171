package validator

// Null requires the value to be nil.
type Null struct{}

func (Null) MessageKey() string { return "validation.null" }
func (Null) Params() []Param { return nil }

// NotNull requires the value to be non-nil.
type NotNull struct{}

func (NotNull) MessageKey() string { return "validation.not_null" }
func (NotNull) Params() []Param { return nil }

// Equals requires the value to equal Value.
type Equals struct{ Value any }

func (Equals) MessageKey() string { return "validation.equals" }
func (c Equals) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// NotEquals requires the value to differ from Value.
type NotEquals struct{ Value any }

func (NotEquals) MessageKey() string { return "validation.not_equals" }
func (c NotEquals) Params() []Param { return []Param{{Name: "value", Value: c.Value}} }

// In requires the value to be one of Values, which holds a slice.
type In struct{ Values any }

func (In) MessageKey() string { return "validation.in" }
func (c In) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// NotIn requires the value to be none of Values, which holds a slice.
type NotIn struct{ Values any }

func (NotIn) MessageKey() string { return "validation.not_in" }
func (c NotIn) Params() []Param { return []Param{{Name: "values", Value: c.Values}} }

// Valid is reported by custom predicates.
type Valid struct{}

func (Valid) MessageKey() string { return "validation.valid" }
func (Valid) Params() []Param { return nil }

// True requires the value to be true.
type True struct{}

func (True) MessageKey() string { return "validation.true" }
func (True) Params() []Param { return nil }

// False requires the value to be false.
type False struct{}

func (False) MessageKey() string { return "validation.false" }
func (False) Params() []Param { return nil }
