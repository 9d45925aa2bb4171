package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glockbender/kvalidity/pkg/validator"
)

func TestBoundedConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		constraint validator.Constraint
		key        string
		params     []validator.Param
	}{
		{
			name:       "size both bounds",
			constraint: validator.Size{Min: 1, Max: 5},
			key:        "validation.size",
			params:     []validator.Param{{Name: "min", Value: 1}, {Name: "max", Value: 5}},
		},
		{
			name:       "size min",
			constraint: validator.Size{Min: 1, Max: validator.NoMax},
			key:        "validation.size.min",
			params:     []validator.Param{{Name: "min", Value: 1}},
		},
		{
			name:       "size max",
			constraint: validator.Size{Min: validator.NoMin, Max: 5},
			key:        "validation.size.max",
			params:     []validator.Param{{Name: "max", Value: 5}},
		},
		{
			name:       "size unbounded",
			constraint: validator.Size{Min: validator.NoMin, Max: validator.NoMax},
			key:        "validation.size",
			params:     []validator.Param{{Name: "min", Value: validator.NoMin}, {Name: "max", Value: validator.NoMax}},
		},
		{
			name:       "integer digits min",
			constraint: validator.IntegerDigits{Min: 2, Max: validator.NoMax},
			key:        "validation.integer_digits.min",
			params:     []validator.Param{{Name: "min", Value: 2}},
		},
		{
			name:       "decimal digits both",
			constraint: validator.DecimalDigits{Min: 0, Max: 2},
			key:        "validation.decimal_digits",
			params:     []validator.Param{{Name: "min", Value: 0}, {Name: "max", Value: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.constraint.MessageKey())
			assert.Equal(t, tt.params, tt.constraint.Params())
		})
	}
}

func TestConstraintEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Between{Start: 1, End: 2}, validator.Between{Start: 1, End: 2})
	assert.NotEqual(t, validator.Between{Start: 1, End: 2}, validator.Between{Start: 1, End: 3})
	assert.Equal(t, validator.Equals{Value: "a"}, validator.Equals{Value: "a"})
	assert.Empty(t, validator.NotBlank{}.Params())
}
