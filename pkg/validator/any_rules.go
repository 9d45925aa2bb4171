package validator

import "slices"

// IsNil requires a nil pointer.
func IsNil[T any]() Rule[*T] {
	return Rule[*T]{
		Constraint: constant[*T](Null{}),
		Check:      func(v *T) bool { return v == nil },
	}
}

// IsNotNil requires a non-nil pointer without dereferencing it. Use NotNil to continue with
// the pointed-to value.
func IsNotNil[T any]() Rule[*T] {
	return Rule[*T]{
		Constraint: constant[*T](NotNull{}),
		Check:      func(v *T) bool { return v != nil },
	}
}

// NotNil records NotNull for a nil pointer and stops the chain. Otherwise the returned pipeline
// holds the dereferenced value.
func NotNil[T any](p *Pipeline[*T]) *Pipeline[T] {
	return ValidateAndMap(p,
		constant[*T](NotNull{}),
		func(v *T) bool { return v != nil },
		func(v *T) T { return *v },
	)
}

func IsEqualTo[V comparable](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](Equals{Value: value}),
		Check:      func(v V) bool { return v == value },
	}
}

func IsNotEqualTo[V comparable](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](NotEquals{Value: value}),
		Check:      func(v V) bool { return v != value },
	}
}

// IsIn requires the value to be one of values.
func IsIn[V comparable](values ...V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](In{Values: values}),
		Check:      func(v V) bool { return slices.Contains(values, v) },
	}
}

// IsNotIn requires the value to be none of values.
func IsNotIn[V comparable](values ...V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](NotIn{Values: values}),
		Check:      func(v V) bool { return !slices.Contains(values, v) },
	}
}

// IsValid wraps a custom predicate, reported as Valid.
func IsValid[V any](fn func(V) bool) Rule[V] {
	return Rule[V]{Constraint: constant[V](Valid{}), Check: fn}
}

// IsCoValid wraps a custom asynchronous predicate, reported as Valid.
func IsCoValid[V any](fn AsyncPredicate[V]) CoRule[V] {
	return CoRule[V]{Constraint: constant[V](Valid{}), Check: fn}
}
