package validator

import (
	"context"
	"fmt"

	"github.com/glockbender/kvalidity/pkg/async"
)

// State tags the variant a Pipeline is in.
type State uint8

const (
	// StateBound holds the value the pipeline was created with.
	StateBound State = iota
	// StateTransformed holds a value produced by a successful ValidateAndMap.
	StateTransformed
	// StateStopped holds no value: a transforming rule failed upstream.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateTransformed:
		return "transformed"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// AsyncPredicate is a check whose result arrives through a future.
type AsyncPredicate[V any] func(ctx context.Context, v V) *async.Future[bool]

// AsyncMapper is a transformation whose result arrives through a future.
type AsyncMapper[V, R any] func(ctx context.Context, v V) *async.Future[R]

// Rule pairs a check with the constraint reported when the check fails.
type Rule[V any] struct {
	Constraint func(V) Constraint
	Check      func(V) bool
}

// CoRule is the asynchronous form of Rule.
type CoRule[V any] struct {
	Constraint func(V) Constraint
	Check      AsyncPredicate[V]
}

// Pipeline applies rules to one property value and records failures into the run's sink.
//
// A stopped pipeline carries no value. Every chaining operation on it is a no-op, while
// Value panics with ErrValueNotAvailable.
type Pipeline[V any] struct {
	sink     *sink
	property string
	state    State
	value    V
}

func bound[V any](s *sink, property string, value V) *Pipeline[V] {
	return &Pipeline[V]{sink: s, property: property, state: StateBound, value: value}
}

func stopped[V any](s *sink, property string) *Pipeline[V] {
	return &Pipeline[V]{sink: s, property: property, state: StateStopped}
}

func (p *Pipeline[V]) Property() string { return p.property }

func (p *Pipeline[V]) State() State { return p.state }

// Stopped reports whether the pipeline holds no value.
func (p *Pipeline[V]) Stopped() bool { return p.state == StateStopped }

// Value returns the held value. It panics with ErrValueNotAvailable when the pipeline is stopped.
func (p *Pipeline[V]) Value() V {
	switch p.state {
	case StateBound, StateTransformed:
		return p.value
	case StateStopped:
		panic(fmt.Errorf("%w: property %q", ErrValueNotAvailable, p.property))
	default:
		panic(fmt.Sprintf("validator: unknown pipeline state %s", p.state))
	}
}

// live reports whether rules should run: the pipeline holds a value and the run has not faulted.
func (p *Pipeline[V]) live() bool {
	switch p.state {
	case StateBound, StateTransformed:
		return !p.sink.aborted()
	case StateStopped:
		return false
	default:
		panic(fmt.Sprintf("validator: unknown pipeline state %s", p.state))
	}
}

func (p *Pipeline[V]) reject(constraint func(V) Constraint) {
	p.sink.add(Violation{Property: p.property, Value: p.value, Constraint: constraint(p.value)})
}

// Validate records constraint(value) when check(value) is false. It never stops the pipeline.
func (p *Pipeline[V]) Validate(constraint func(V) Constraint, check func(V) bool) *Pipeline[V] {
	if p.live() && !check(p.value) {
		p.reject(constraint)
	}
	return p
}

// Check is Validate with a constant constraint.
func (p *Pipeline[V]) Check(c Constraint, check func(V) bool) *Pipeline[V] {
	return p.Validate(constant[V](c), check)
}

// Apply runs rules in order.
func (p *Pipeline[V]) Apply(rules ...Rule[V]) *Pipeline[V] {
	for _, rule := range rules {
		p.Validate(rule.Constraint, rule.Check)
	}
	return p
}

// CoValidate is Validate with an asynchronous check. The returned future is awaited before the
// next rule runs. A future failing with an error, or ctx ending first, faults the run.
func (p *Pipeline[V]) CoValidate(ctx context.Context, constraint func(V) Constraint, check AsyncPredicate[V]) *Pipeline[V] {
	if !p.live() {
		return p
	}
	ok, err := await(ctx, check(ctx, p.value))
	if err != nil {
		p.sink.fail(err)
		return p
	}
	if !ok {
		p.reject(constraint)
	}
	return p
}

// CoCheck is CoValidate with a constant constraint.
func (p *Pipeline[V]) CoCheck(ctx context.Context, c Constraint, check AsyncPredicate[V]) *Pipeline[V] {
	return p.CoValidate(ctx, constant[V](c), check)
}

// CoApply runs asynchronous rules in order, awaiting each one.
func (p *Pipeline[V]) CoApply(ctx context.Context, rules ...CoRule[V]) *Pipeline[V] {
	for _, rule := range rules {
		p.CoValidate(ctx, rule.Constraint, rule.Check)
	}
	return p
}

// ValidateAndMap checks the value and, on success, continues with mapper(value).
// On failure it records one violation and returns a stopped pipeline. On a stopped
// pipeline neither check nor mapper is called.
func ValidateAndMap[V, R any](p *Pipeline[V], constraint func(V) Constraint, check func(V) bool, mapper func(V) R) *Pipeline[R] {
	if !p.live() {
		return stopped[R](p.sink, p.property)
	}
	if !check(p.value) {
		p.reject(constraint)
		return stopped[R](p.sink, p.property)
	}
	return &Pipeline[R]{sink: p.sink, property: p.property, state: StateTransformed, value: mapper(p.value)}
}

// CoValidateAndMap is ValidateAndMap with an asynchronous check and mapper.
// Both futures are awaited in turn; a failure of either faults the run.
func CoValidateAndMap[V, R any](ctx context.Context, p *Pipeline[V], constraint func(V) Constraint, check AsyncPredicate[V], mapper AsyncMapper[V, R]) *Pipeline[R] {
	if !p.live() {
		return stopped[R](p.sink, p.property)
	}
	ok, err := await(ctx, check(ctx, p.value))
	if err != nil {
		p.sink.fail(err)
		return stopped[R](p.sink, p.property)
	}
	if !ok {
		p.reject(constraint)
		return stopped[R](p.sink, p.property)
	}
	mapped, err := await(ctx, mapper(ctx, p.value))
	if err != nil {
		p.sink.fail(err)
		return stopped[R](p.sink, p.property)
	}
	return &Pipeline[R]{sink: p.sink, property: p.property, state: StateTransformed, value: mapped}
}

func await[T any](ctx context.Context, f *async.Future[T]) (T, error) {
	if f == nil {
		var zero T
		return zero, ErrNilFuture
	}
	return f.AwaitContext(ctx)
}

func constant[V any](c Constraint) func(V) Constraint {
	return func(V) Constraint { return c }
}
