package validator

import "slices"

func ContainsElement[E comparable](element E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](Contains{Value: element}),
		Check:      func(v []E) bool { return slices.Contains(v, element) },
	}
}

func ContainsAllElements[E comparable](elements ...E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](ContainsAll{Values: elements}),
		Check:      func(v []E) bool { return containsAllElements(v, elements) },
	}
}

func ContainsAnyElement[E comparable](elements ...E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](ContainsAny{Values: elements}),
		Check:      func(v []E) bool { return containsAnyElement(v, elements) },
	}
}

func DoesNotContainElement[E comparable](element E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](NotContain{Value: element}),
		Check:      func(v []E) bool { return !slices.Contains(v, element) },
	}
}

// DoesNotContainAllElements passes unless every element is present.
func DoesNotContainAllElements[E comparable](elements ...E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](NotContainAll{Values: elements}),
		Check:      func(v []E) bool { return !containsAllElements(v, elements) },
	}
}

// DoesNotContainAnyElement passes when no element is present.
func DoesNotContainAnyElement[E comparable](elements ...E) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](NotContainAny{Values: elements}),
		Check:      func(v []E) bool { return !containsAnyElement(v, elements) },
	}
}

// HasLen bounds the number of elements. Use NoMin or NoMax for an open bound.
func HasLen[E any](minimum, maximum int) Rule[[]E] {
	return Rule[[]E]{
		Constraint: constant[[]E](Size{Min: minimum, Max: maximum}),
		Check:      func(v []E) bool { return withinBounds(len(v), minimum, maximum) },
	}
}

func HasMinLen[E any](minimum int) Rule[[]E] { return HasLen[E](minimum, NoMax) }

func HasMaxLen[E any](maximum int) Rule[[]E] { return HasLen[E](NoMin, maximum) }

func containsAllElements[E comparable](v, elements []E) bool {
	for _, e := range elements {
		if !slices.Contains(v, e) {
			return false
		}
	}
	return true
}

func containsAnyElement[E comparable](v, elements []E) bool {
	return slices.ContainsFunc(elements, func(e E) bool { return slices.Contains(v, e) })
}
