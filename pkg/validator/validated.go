package validator

import (
	"slices"
	"strings"
)

// Validated is the immutable outcome of a validation run: the original value and every
// violation recorded against it, in order.
type Validated[T any] struct {
	value      T
	violations Violations
}

func newValidated[T any](value T, violations Violations) *Validated[T] {
	return &Validated[T]{value: value, violations: cloneViolations(violations)}
}

func cloneViolations(vs Violations) Violations {
	if len(vs) == 0 {
		return nil
	}
	return slices.Clone(vs)
}

// Value returns the value the run was started with, whatever the pipelines mapped it to.
func (v *Validated[T]) Value() T { return v.value }

// Violations returns a copy of the recorded violations.
func (v *Validated[T]) Violations() Violations { return cloneViolations(v.violations) }

func (v *Validated[T]) IsValid() bool { return v.violations.IsEmpty() }

func (v *Validated[T]) IsNotValid() bool { return !v.IsValid() }

// Err returns nil when valid, otherwise a *ViolationError with messages rendered per opts.
func (v *Validated[T]) Err(opts ...Option) error {
	if v.IsValid() {
		return nil
	}
	return newViolationError(v.violations, opts...)
}

// Get returns the value when valid. Otherwise it returns the zero value and a *ViolationError.
func (v *Validated[T]) Get(opts ...Option) (T, error) {
	if err := v.Err(opts...); err != nil {
		var zero T
		return zero, err
	}
	return v.value, nil
}

// MustGet returns the value when valid and panics with a *ViolationError otherwise.
func (v *Validated[T]) MustGet(opts ...Option) T {
	value, err := v.Get(opts...)
	if err != nil {
		panic(err)
	}
	return value
}

// ToResult converts the outcome into a Result.
func (v *Validated[T]) ToResult(opts ...Option) Result[T] {
	if err := v.Err(opts...); err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v.value}
}

// Result is either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

func (r Result[T]) IsOk() bool { return r.err == nil }

func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the value, or the zero value when the result is an error.
func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Err() error { return r.err }

func (r Result[T]) Get() (T, error) { return r.value, r.err }

// ViolationError reports every violation of a failed run together with its rendered message.
type ViolationError struct {
	Violations Violations
	Locale     string
	messages   []string
}

func newViolationError(vs Violations, opts ...Option) *ViolationError {
	o := newRenderOptions(opts)
	messages := make([]string, len(vs))
	for i, v := range vs {
		messages[i] = resolveMessage(o.ctx, o.resolver, v, o.locale)
	}
	return &ViolationError{Violations: cloneViolations(vs), Locale: o.locale, messages: messages}
}

// Messages returns the rendered message of each violation, in order.
func (e *ViolationError) Messages() []string {
	return slices.Clone(e.messages)
}

func (e *ViolationError) Error() string {
	var b strings.Builder
	for i, v := range e.Violations {
		if i > 0 {
			b.WriteString("; ")
		}
		property := v.Property
		if property == "" {
			property = "unknown"
		}
		b.WriteString(property)
		b.WriteString(": ")
		b.WriteString(e.messages[i])
	}
	return b.String()
}

func (e *ViolationError) Is(target error) bool {
	return target == ErrValidationFailed
}
