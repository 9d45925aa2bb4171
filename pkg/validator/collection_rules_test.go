package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glockbender/kvalidity/pkg/validator"
)

func TestCollectionRules(t *testing.T) {
	t.Parallel()

	tags := []string{"go", "rust", "zig"}

	tests := []struct {
		name       string
		rule       validator.Rule[[]string]
		want       bool
		constraint validator.Constraint
	}{
		{name: "contains", rule: validator.ContainsElement("go"), want: true, constraint: validator.Contains{Value: "go"}},
		{name: "contains missing", rule: validator.ContainsElement("c"), want: false, constraint: validator.Contains{Value: "c"}},
		{name: "contains all", rule: validator.ContainsAllElements("go", "zig"), want: true, constraint: validator.ContainsAll{Values: []string{"go", "zig"}}},
		{name: "contains all partial", rule: validator.ContainsAllElements("go", "c"), want: false, constraint: validator.ContainsAll{Values: []string{"go", "c"}}},
		{name: "contains any", rule: validator.ContainsAnyElement("c", "zig"), want: true, constraint: validator.ContainsAny{Values: []string{"c", "zig"}}},
		{name: "contains any none", rule: validator.ContainsAnyElement("c", "java"), want: false, constraint: validator.ContainsAny{Values: []string{"c", "java"}}},
		{name: "does not contain", rule: validator.DoesNotContainElement("c"), want: true, constraint: validator.NotContain{Value: "c"}},
		{name: "does not contain present", rule: validator.DoesNotContainElement("go"), want: false, constraint: validator.NotContain{Value: "go"}},
		{name: "does not contain all partial", rule: validator.DoesNotContainAllElements("go", "c"), want: true, constraint: validator.NotContainAll{Values: []string{"go", "c"}}},
		{name: "does not contain all full", rule: validator.DoesNotContainAllElements("go", "rust"), want: false, constraint: validator.NotContainAll{Values: []string{"go", "rust"}}},
		{name: "does not contain any", rule: validator.DoesNotContainAnyElement("c", "java"), want: true, constraint: validator.NotContainAny{Values: []string{"c", "java"}}},
		{name: "does not contain any present", rule: validator.DoesNotContainAnyElement("c", "rust"), want: false, constraint: validator.NotContainAny{Values: []string{"c", "rust"}}},
		{name: "len", rule: validator.HasLen[string](1, 3), want: true, constraint: validator.Size{Min: 1, Max: 3}},
		{name: "len too long", rule: validator.HasLen[string](1, 2), want: false, constraint: validator.Size{Min: 1, Max: 2}},
		{name: "min len", rule: validator.HasMinLen[string](4), want: false, constraint: validator.Size{Min: 4, Max: validator.NoMax}},
		{name: "max len", rule: validator.HasMaxLen[string](3), want: true, constraint: validator.Size{Min: validator.NoMin, Max: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check(tags))
			assert.Equal(t, tt.constraint, tt.rule.Constraint(tags))
		})
	}

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.ContainsAllElements[string]().Check(nil))
		assert.False(t, validator.ContainsAnyElement("go").Check(nil))
		assert.False(t, validator.HasMinLen[int](1).Check(nil))
	})
}
