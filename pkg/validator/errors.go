package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ViolationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrValueNotAvailable is the panic value raised when a stopped pipeline is asked for its value.
	// It signals a misuse of the API, not invalid data.
	ErrValueNotAvailable = errors.New("validator: value is not available on a stopped pipeline")

	// ErrNilFuture is recorded as the run fault when an async predicate or mapper returns no future.
	ErrNilFuture = errors.New("validator: async check returned a nil future")
)
