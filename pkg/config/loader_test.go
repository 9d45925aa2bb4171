package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glockbender/kvalidity/pkg/config"
)

type TestConfigDefault struct {
	Locale     string `env:"TEST_LOCALE_DEFAULT" envDefault:"en"`
	MaxEntries int    `env:"TEST_MAX_ENTRIES_DEFAULT" envDefault:"42"`
	Verbose    bool   `env:"TEST_VERBOSE_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	Locale     string `env:"TEST_LOCALE_SUCCESS" envDefault:"en"`
	MaxEntries int    `env:"TEST_MAX_ENTRIES_SUCCESS" envDefault:"42"`
	Verbose    bool   `env:"TEST_VERBOSE_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	Locale string `env:"TEST_LOCALE_SINGLETON" envDefault:"en"`
}

type TestConfigPrefixed struct {
	Locale string `env:"LOCALE" envDefault:"en"`
}

type TestConfigFromFile struct {
	Locale string `env:"TEST_LOCALE_FROM_FILE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_LOCALE_SUCCESS", "es")
	t.Setenv("TEST_MAX_ENTRIES_SUCCESS", "100")
	t.Setenv("TEST_VERBOSE_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, 100, cfg.MaxEntries)
	assert.False(t, cfg.Verbose)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_LOCALE_DEFAULT")
	os.Unsetenv("TEST_MAX_ENTRIES_DEFAULT")
	os.Unsetenv("TEST_VERBOSE_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 42, cfg.MaxEntries)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_LOCALE_SINGLETON", "fr")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_LOCALE_SINGLETON", "de")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "fr", second.Locale, "Second config should be served from cache")

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "de", third.Locale, "ResetCache should force a fresh parse")
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Setenv("ALPHA_LOCALE", "es")
	t.Setenv("BETA_LOCALE", "ru")

	var alpha, beta TestConfigPrefixed
	require.NoError(t, config.Load(&alpha, config.WithPrefix("ALPHA_")))
	require.NoError(t, config.Load(&beta, config.WithPrefix("BETA_")))

	assert.Equal(t, "es", alpha.Locale)
	assert.Equal(t, "ru", beta.Locale, "Same type with another prefix must not hit the cache")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err, "Load should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads variables from file", func(t *testing.T) {
		os.Unsetenv("TEST_LOCALE_FROM_FILE")
		t.Cleanup(func() { os.Unsetenv("TEST_LOCALE_FROM_FILE") })

		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("TEST_LOCALE_FROM_FILE=pt\n"), 0o600))

		require.NoError(t, config.LoadEnv(path))

		var cfg TestConfigFromFile
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pt", cfg.Locale)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}
