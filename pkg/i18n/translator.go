package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator looks up translation templates loaded from a TranslationAdapter and fills
// their named placeholders.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "Translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w for language: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language configured with WithDefaultLanguage.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.size.min" visits m["validation"], then ["size"], then ["min"].
// A key naming a map holding a "_" entry resolves to that entry, which lets a template
// coexist with more specific variants ("validation.size" next to "validation.size.min").
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}

		if i == len(parts)-1 {
			if nested, isMap := asStringMap(next); isMap {
				if self, ok := nested["_"]; ok {
					return self, true
				}
			}
			return next, true
		}

		nested, isMap := asStringMap(next)
		if !isMap {
			return nil, false
		}
		current = nested
	}

	return nil, false
}

// HasTranslation checks if a string translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.template(lang, key)
	return ok
}

func (t *Translator) template(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// buildParams converts key, value, key, value, … into a map. An odd trailing key is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes "%{key}" placeholders. Unknown placeholders are kept verbatim.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// Lookup translates key for lang and reports whether a translation was found.
// Arguments are key-value pairs substituted into "%{key}" placeholders.
// No fallback is applied: a missing language or key yields ("", false).
func (t *Translator) Lookup(lang, key string, args ...string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.template(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return "", false
	}
	return namedSprintf(tmpl, buildParams(args)), true
}

// T translates a key for the given language.
// It supports formatting with additional arguments provided as key-value pairs.
// For example: translator.T("en", "validation.equals", "value", "321") substitutes
// "%{value}" in the template.
//
// If the translation is not found and FallbackToKey is true, the key itself is returned
// (with placeholders substituted). Otherwise, it returns an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.Lookup(lang, key, args...); ok {
		return msg
	}
	if t.fallbackToKey {
		return namedSprintf(key, buildParams(args))
	}
	return ""
}
