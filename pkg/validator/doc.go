// Package validator validates values through chainable, type-safe rule pipelines and reports
// every failed rule as a Violation with a localized message.
//
// A validation run starts at an entry point, which creates the run's violation list and hands
// the caller a pipeline (or a Validator to open one pipeline per property). Rules are applied
// in the order written. A failing rule is recorded and the chain goes on; nothing is returned
// mid-chain. The run ends with a Validated value carrying the original input and all recorded
// violations.
//
// # Usage
//
//	validated := validator.Validate(user, func(v *validator.Validator, u User) {
//		validator.Field(v, "name", u.Name).Apply(validator.IsNotBlank(), validator.HasMaxSize(64))
//		validator.Field(v, "age", u.Age).Apply(validator.IsGreaterThanOrEqualTo(18))
//		email := validator.NotNil(validator.Field(v, "email", u.Email))
//		email.Apply(validator.IsEmail())
//	})
//
//	user, err := validated.Get(validator.WithLocale("es"))
//
// ValidateSelf validates a single value under a property name:
//
//	err := validator.ValidateSelf("123", "test", func(p *validator.Pipeline[string]) {
//		p.Apply(validator.IsEmpty(), validator.IsEqualTo("321"))
//	}).Err()
//	// err.Error() == "test: Must be empty; test: Must be equal to [321]"
//
// # Transforming rules
//
// ValidateAndMap (and rules built on it such as NotNil and ParseUUID) continues the chain with
// a new value type. When its check fails, it records one violation and returns a stopped
// pipeline. Every operation on a stopped pipeline is a no-op, while reading its Value panics
// with ErrValueNotAvailable.
//
// # Asynchronous checks
//
// CoValidate, CoApply and CoValidateAndMap take checks returning an *async.Future. Each future
// is awaited before the next rule runs. A future that fails, or a context that ends first,
// aborts the run: ValidateContext and ValidateSelfContext return the error and no Validated.
//
// # Messages
//
// Messages are rendered when an error is built (Err, Get, MustGet, ToResult), never while
// rules run. The MessageResolver defaults to DefaultResolver, which serves the bundled "en"
// and "es" messages plus the files found in VALIDATOR_MESSAGES_DIR. A constraint without a
// message renders as its key, params and the rejected value.
//
// # Configuration
//
//	VALIDATOR_DEFAULT_LOCALE        locale used when none is given (default "en")
//	VALIDATOR_MESSAGES_DIR          directory of YAML or JSON message overrides
//	VALIDATOR_LOG_MISSING_MESSAGES  warn about constraints without a message
//	VALIDATOR_LOG_LEVEL             debug, info, warn (default) or error
//	VALIDATOR_LOG_FORMAT            text (default) or json
package validator
