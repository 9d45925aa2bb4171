package validator

import "cmp"

func IsLessThan[V cmp.Ordered](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](Less{Value: value}),
		Check:      func(v V) bool { return cmp.Less(v, value) },
	}
}

func IsLessThanOrEqualTo[V cmp.Ordered](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](LessOrEqual{Value: value}),
		Check:      func(v V) bool { return cmp.Compare(v, value) <= 0 },
	}
}

func IsGreaterThan[V cmp.Ordered](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](Greater{Value: value}),
		Check:      func(v V) bool { return cmp.Compare(v, value) > 0 },
	}
}

func IsGreaterThanOrEqualTo[V cmp.Ordered](value V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](GreaterOrEqual{Value: value}),
		Check:      func(v V) bool { return cmp.Compare(v, value) >= 0 },
	}
}

// IsBetween requires start <= value <= end.
func IsBetween[V cmp.Ordered](start, end V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](Between{Start: start, End: end}),
		Check:      func(v V) bool { return inRange(v, start, end) },
	}
}

// IsNotBetween requires value < start or value > end.
func IsNotBetween[V cmp.Ordered](start, end V) Rule[V] {
	return Rule[V]{
		Constraint: constant[V](NotBetween{Start: start, End: end}),
		Check:      func(v V) bool { return !inRange(v, start, end) },
	}
}

func inRange[V cmp.Ordered](v, start, end V) bool {
	return cmp.Compare(v, start) >= 0 && cmp.Compare(v, end) <= 0
}

// withinBounds reports whether n lies in [minimum, maximum], where NoMin and NoMax leave a side open.
func withinBounds(n, minimum, maximum int) bool {
	return (minimum == NoMin || n >= minimum) && (maximum == NoMax || n <= maximum)
}
