package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser turns the content of a translation file into translations grouped by language.
// The outer map is keyed by language code; inner maps may nest to any depth and are
// addressed with dot-separated keys.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when no parser fits.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages validates the decoded document layout: every top-level value must be a
// mapping of translations.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		switch m := val.(type) {
		case map[string]any:
			result[lang] = m
		case map[any]any:
			result[lang] = stringKeys(m)
		default:
			return nil, fmt.Errorf("%w: language %q holds %T", ErrInvalidBundleLayout, lang, val)
		}
	}
	return result, nil
}

func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if ks, ok := k.(string); ok {
			out[ks] = v
		}
	}
	return out
}
