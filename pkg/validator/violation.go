package validator

// Violation records one failed rule against one property value.
// An empty Property means the value had no property name.
type Violation struct {
	Property   string
	Value      any
	Constraint Constraint
}

// Violations is an ordered list of violations.
type Violations []Violation

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

func (vs Violations) Has(property string) bool {
	for _, v := range vs {
		if v.Property == property {
			return true
		}
	}
	return false
}

// Get returns the violations recorded for property, in order.
func (vs Violations) Get(property string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Property == property {
			out = append(out, v)
		}
	}
	return out
}

// Properties lists the distinct property names in first-seen order.
func (vs Violations) Properties() []string {
	var props []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Property] {
			props = append(props, v.Property)
			seen[v.Property] = true
		}
	}
	return props
}

// sink accumulates the violations of a single run. It is written by one goroutine only.
// fault holds the first async failure; once set, the run is aborted.
type sink struct {
	violations Violations
	fault      error
}

func (s *sink) add(v Violation) {
	s.violations = append(s.violations, v)
}

func (s *sink) fail(err error) {
	if s.fault == nil {
		s.fault = err
	}
}

func (s *sink) aborted() bool {
	return s.fault != nil
}
