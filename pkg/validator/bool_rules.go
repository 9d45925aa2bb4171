package validator

func IsTrue() Rule[bool] {
	return Rule[bool]{
		Constraint: constant[bool](True{}),
		Check:      func(v bool) bool { return v },
	}
}

func IsFalse() Rule[bool] {
	return Rule[bool]{
		Constraint: constant[bool](False{}),
		Check:      func(v bool) bool { return !v },
	}
}
