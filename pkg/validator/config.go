package validator

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/glockbender/kvalidity/pkg/config"
	"github.com/glockbender/kvalidity/pkg/i18n"
	"github.com/glockbender/kvalidity/pkg/logger"
)

const envPrefix = "VALIDATOR_"

// Config holds the process-wide settings of the package, read from VALIDATOR_* variables.
type Config struct {
	DefaultLocale      string `env:"DEFAULT_LOCALE" envDefault:"en"`
	MessagesDir        string `env:"MESSAGES_DIR"`
	LogMissingMessages bool   `env:"LOG_MISSING_MESSAGES" envDefault:"false"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat          string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// settings is the config the package actually runs with. A config that fails to load falls
// back to the defaults.
var settings = sync.OnceValue(func() Config {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = Config{DefaultLocale: i18n.DefaultLanguage, LogLevel: "warn", LogFormat: string(logger.FormatText)}
		newLogger(cfg).Warn("falling back to default validator config", logger.Error(err))
	}
	return cfg
})

var pkgLogger = sync.OnceValue(func() *slog.Logger {
	return newLogger(settings())
})

func newLogger(cfg Config) *slog.Logger {
	format := logger.WithTextFormatter()
	if strings.EqualFold(cfg.LogFormat, string(logger.FormatJSON)) {
		format = logger.WithJSONFormatter()
	}
	return logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevelName(cfg.LogLevel),
		format,
		logger.WithAttr(logger.Component("validator")),
		logger.WithContextExtractors(localeFromContext),
	)
}

func localeFromContext(ctx context.Context) (slog.Attr, bool) {
	locale, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Locale(locale), true
}

var defaultLocale struct {
	once  sync.Once
	mu    sync.RWMutex
	value string
}

func initDefaultLocale() {
	defaultLocale.once.Do(func() {
		defaultLocale.value = settings().DefaultLocale
		if defaultLocale.value == "" {
			defaultLocale.value = i18n.DefaultLanguage
		}
	})
}

// DefaultLocale returns the locale used when a call names none.
func DefaultLocale() string {
	initDefaultLocale()
	defaultLocale.mu.RLock()
	defer defaultLocale.mu.RUnlock()
	return defaultLocale.value
}

// SetDefaultLocale changes the process-default locale. An empty locale resets it to "en".
func SetDefaultLocale(locale string) {
	initDefaultLocale()
	if locale == "" {
		locale = i18n.DefaultLanguage
	}
	defaultLocale.mu.Lock()
	defer defaultLocale.mu.Unlock()
	defaultLocale.value = locale
}
