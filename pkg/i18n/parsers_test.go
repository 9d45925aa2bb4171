package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glockbender/kvalidity/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	parser := i18n.NewYAMLParser()

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		content := `
en:
  validation:
    blank: Must be blank
es:
  validation:
    blank: Tiene que estar vacío
`
		got, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Contains(t, got, "en")
		require.Contains(t, got, "es")

		validation, ok := got["es"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Tiene que estar vacío", validation["blank"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: [unclosed")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language is not a mapping", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: hello")
		require.ErrorIs(t, err, i18n.ErrInvalidBundleLayout)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, "en: {a: b}")
		require.ErrorIs(t, err, i18n.ErrParsingCancelled)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension(".yaml"))
		assert.True(t, parser.SupportsFileExtension("YML"))
		assert.False(t, parser.SupportsFileExtension(".json"))
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	parser := i18n.NewJSONParser()

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		got, err := parser.Parse(context.Background(), `{"en":{"validation":{"null":"Must be null"}}}`)
		require.NoError(t, err)
		validation, ok := got["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Must be null", validation["null"])
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{"en":`)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("language is not an object", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{"en":"hello"}`)
		require.ErrorIs(t, err, i18n.ErrInvalidBundleLayout)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.False(t, parser.SupportsFileExtension(".yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/es.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}
