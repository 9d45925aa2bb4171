package validator

import "context"

// Validator is the receiver handed to a Validate builder. It owns the run's violations.
type Validator struct {
	sink *sink
}

// Field starts a pipeline over a property value of the object under validation.
func Field[V any](v *Validator, property string, value V) *Pipeline[V] {
	return bound(v.sink, property, value)
}

// Violations returns a copy of what the run has recorded so far.
func (v *Validator) Violations() Violations {
	return cloneViolations(v.sink.violations)
}

// Validate runs fn against value and collects every violation it records.
//
// A fault raised by an asynchronous check cannot be returned from here, so it panics.
// Use ValidateContext when async checks are involved.
func Validate[T any](value T, fn func(v *Validator, value T)) *Validated[T] {
	s := &sink{}
	fn(&Validator{sink: s}, value)
	if s.fault != nil {
		panic(s.fault)
	}
	return newValidated(value, s.violations)
}

// ValidateContext is Validate for builders that await asynchronous checks.
// A run fault or the end of ctx discards the run and is returned as the error.
func ValidateContext[T any](ctx context.Context, value T, fn func(ctx context.Context, v *Validator, value T)) (*Validated[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &sink{}
	fn(ctx, &Validator{sink: s}, value)
	if s.fault != nil {
		return nil, s.fault
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return newValidated(value, s.violations), nil
}

// ValidateSelf validates value itself under the given property name.
func ValidateSelf[V any](value V, property string, fn func(p *Pipeline[V])) *Validated[V] {
	s := &sink{}
	fn(bound(s, property, value))
	if s.fault != nil {
		panic(s.fault)
	}
	return newValidated(value, s.violations)
}

// ValidateSelfContext is ValidateSelf for builders that await asynchronous checks.
func ValidateSelfContext[V any](ctx context.Context, value V, property string, fn func(ctx context.Context, p *Pipeline[V])) (*Validated[V], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &sink{}
	fn(ctx, bound(s, property, value))
	if s.fault != nil {
		return nil, s.fault
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return newValidated(value, s.violations), nil
}
