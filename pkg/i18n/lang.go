package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing else is configured or negotiated.
const DefaultLanguage = "en"

// maxLangCodeLength bounds the input handed to the BCP 47 parser.
// RFC 5646 recommends 35 characters max.
const maxLangCodeLength = 35

// MatchLanguage picks the supported language that best serves lang.
//
// The exact tag wins first, then the closest supported variant as judged by
// golang.org/x/text/language (so "es-MX" is served by "es"). Anything that cannot be
// parsed or has no reasonable match resolves to defaultLang, which is returned as is
// even when it is absent from supported.
func MatchLanguage(lang string, supported []string, defaultLang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength || len(supported) == 0 {
		return defaultLang
	}

	for _, s := range supported {
		if strings.EqualFold(s, lang) {
			return s
		}
	}

	requested, err := language.Parse(lang)
	if err != nil {
		return defaultLang
	}

	candidates := make([]string, 0, len(supported)+1)
	tags := make([]language.Tag, 0, len(supported)+1)
	// The matcher falls back to its first tag, so the default leads when it is usable.
	if tag, err := language.Parse(defaultLang); err == nil {
		candidates = append(candidates, defaultLang)
		tags = append(tags, tag)
	}
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		candidates = append(candidates, s)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(requested)
	if confidence == language.No {
		return defaultLang
	}
	return candidates[idx]
}

// BaseLanguage returns the primary language subtag of lang ("es" for "es-MX").
// Unparseable input is returned lower-cased and cut at the first separator.
func BaseLanguage(lang string) string {
	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		return base.String()
	}
	lang = strings.ToLower(lang)
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		return lang[:idx]
	}
	return lang
}
