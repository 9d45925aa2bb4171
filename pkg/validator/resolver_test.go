package validator_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glockbender/kvalidity/pkg/i18n"
	"github.com/glockbender/kvalidity/pkg/validator"
)

// unregistered is a constraint without a bundled message.
type unregistered struct{ Limit map[string]int }

func (unregistered) MessageKey() string { return "custom.unregistered" }
func (c unregistered) Params() []Param { return []Param{{Name: "limit", Value: c.Limit}} }

type Param = validator.Param

func TestDefaultResolver(t *testing.T) {
	t.Parallel()

	resolver := validator.DefaultResolver()
	ctx := context.Background()

	tests := []struct {
		name       string
		constraint validator.Constraint
		locale     string
		want       string
	}{
		{name: "english", constraint: validator.Empty{}, locale: "en", want: "Must be empty"},
		{name: "spanish", constraint: validator.Blank{}, locale: "es", want: "Tiene que estar vacío"},
		{name: "regional variant", constraint: validator.Blank{}, locale: "es-MX", want: "Tiene que estar vacío"},
		{name: "unknown locale falls back", constraint: validator.Blank{}, locale: "unknown", want: "Must be blank"},
		{name: "unsupported locale falls back", constraint: validator.NotNull{}, locale: "ja", want: "Must not be null"},
		{name: "quoted yaml keys", constraint: validator.Null{}, locale: "en", want: "Must be null"},
		{name: "boolean keys", constraint: validator.True{}, locale: "es", want: "Tiene que ser verdadero"},
		{name: "slice params are joined", constraint: validator.In{Values: []string{"a", "b"}}, locale: "en", want: "Must be one of [a, b]"},
		{name: "size both bounds", constraint: validator.Size{Min: 1, Max: 3}, locale: "en", want: "Size must be between 1 and 3"},
		{name: "size min only", constraint: validator.Size{Min: 2, Max: validator.NoMax}, locale: "en", want: "Size must be greater than or equal to 2"},
		{name: "size max only", constraint: validator.Size{Min: validator.NoMin, Max: 5}, locale: "es", want: "El tamaño tiene que ser menor o igual que 5"},
		{name: "stringer params", constraint: validator.Less{Value: 2 * time.Second}, locale: "en", want: "Must be less than [2s]"},
		{name: "nil params", constraint: validator.Equals{Value: nil}, locale: "en", want: "Must be equal to [null]"},
		{name: "digits", constraint: validator.DecimalDigits{Min: validator.NoMin, Max: 2}, locale: "en", want: "Must have at most 2 decimal digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := resolver.Resolve(ctx, tt.constraint, tt.locale)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown constraint", func(t *testing.T) {
		t.Parallel()
		_, ok := resolver.Resolve(ctx, unregistered{}, "en")
		assert.False(t, ok)
	})
}

func TestMessage(t *testing.T) {
	t.Parallel()

	t.Run("fallback names the constraint and the value", func(t *testing.T) {
		t.Parallel()
		v := validator.Violation{
			Property:   "limits",
			Value:      map[string]int{"b": 2, "a": 1},
			Constraint: unregistered{Limit: map[string]int{"z": 9, "y": 8}},
		}

		msg := validator.Message(v, validator.WithLocale("en"))
		assert.Equal(t, "custom.unregistered[limit=map[y:8 z:9]]: rejected value map[a:1 b:2]", msg)
	})

	t.Run("fallback without params", func(t *testing.T) {
		t.Parallel()
		resolver := validator.MessageResolverFunc(func(context.Context, validator.Constraint, string) (string, bool) {
			return "", false
		})
		msg := validator.Message(validator.Violation{Value: "x", Constraint: validator.Email{}}, validator.WithResolver(resolver))
		assert.Equal(t, "validation.email: rejected value x", msg)
	})

	t.Run("panicking resolver falls back", func(t *testing.T) {
		t.Parallel()
		resolver := validator.MessageResolverFunc(func(context.Context, validator.Constraint, string) (string, bool) {
			panic("resolver exploded")
		})

		res := validator.ValidateSelf(1, "n", func(p *validator.Pipeline[int]) {
			p.Apply(validator.IsEqualTo(2))
		})
		err := res.Err(validator.WithResolver(resolver))
		require.Error(t, err)
		assert.Equal(t, "n: validation.equals[value=2]: rejected value 1", err.Error())
	})

	t.Run("locale from context", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "es")
		msg := validator.Message(validator.Violation{Constraint: validator.Blank{}}, validator.WithContext(ctx))
		assert.Equal(t, "Tiene que estar vacío", msg)
	})

	t.Run("explicit locale wins over context", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "es")
		msg := validator.Message(validator.Violation{Constraint: validator.Blank{}},
			validator.WithContext(ctx), validator.WithLocale("en"))
		assert.Equal(t, "Must be blank", msg)
	})

	t.Run("resolver receives the locale", func(t *testing.T) {
		t.Parallel()
		var gotLocale string
		resolver := validator.MessageResolverFunc(func(_ context.Context, c validator.Constraint, locale string) (string, bool) {
			gotLocale = locale
			return "custom " + c.MessageKey(), true
		})
		msg := validator.Message(validator.Violation{Constraint: validator.Digit{}},
			validator.WithResolver(resolver), validator.WithLocale("de"))
		assert.Equal(t, "custom validation.digit", msg)
		assert.Equal(t, "de", gotLocale)
	})
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("overrides and extra languages", func(t *testing.T) {
		t.Parallel()
		override := &i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"validation": map[string]any{"empty": "Has to be empty"}},
			"de": {"validation": map[string]any{"empty": "Muss leer sein"}},
		}}

		resolver, err := validator.NewResolver(context.Background(), []i18n.TranslationAdapter{override})
		require.NoError(t, err)

		msg, ok := resolver.Resolve(context.Background(), validator.Empty{}, "en")
		require.True(t, ok)
		assert.Equal(t, "Has to be empty", msg)

		msg, ok = resolver.Resolve(context.Background(), validator.Empty{}, "de-AT")
		require.True(t, ok)
		assert.Equal(t, "Muss leer sein", msg)

		// keys missing from a language come from the default one
		msg, ok = resolver.Resolve(context.Background(), validator.NotEmpty{}, "de")
		require.True(t, ok)
		assert.Equal(t, "Must not be empty", msg)
	})

	t.Run("override directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.yaml"),
			[]byte("fr:\n  validation:\n    blank: Doit être vide\n"), 0o600))

		resolver, err := validator.NewResolver(context.Background(),
			[]i18n.TranslationAdapter{i18n.NewDirectoryAdapter(nil, dir)})
		require.NoError(t, err)

		res := validator.ValidateSelf("x", "name", func(p *validator.Pipeline[string]) {
			p.Apply(validator.IsBlank())
		})
		err = res.Err(validator.WithResolver(resolver), validator.WithLocale("fr"))
		require.Error(t, err)
		assert.Equal(t, "name: Doit être vide", err.Error())
	})

	t.Run("broken override", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewResolver(context.Background(),
			[]i18n.TranslationAdapter{i18n.NewDirectoryAdapter(nil, filepath.Join(t.TempDir(), "missing"))})
		require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("missing message logging", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		resolver, err := validator.NewResolver(context.Background(), nil,
			validator.WithMissingMessageLogging(true),
			validator.WithResolverLogger(log),
		)
		require.NoError(t, err)

		_, ok := resolver.Resolve(context.Background(), unregistered{}, "es")
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "no message for constraint")
		assert.Contains(t, buf.String(), "message_key=custom.unregistered")
	})

	t.Run("nil translator", func(t *testing.T) {
		t.Parallel()
		_, ok := validator.NewTranslatorResolver(nil).Resolve(context.Background(), validator.Empty{}, "en")
		assert.False(t, ok)
	})
}
