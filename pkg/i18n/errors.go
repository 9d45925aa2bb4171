package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("i18n: translation adapter is nil")

	// Parsing
	ErrParsingCancelled      = errors.New("i18n: parsing cancelled")
	ErrFailedToParseJSON     = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML     = errors.New("i18n: failed to parse YAML content")
	ErrInvalidBundleLayout   = errors.New("i18n: expected a mapping of language to translations")
	ErrUnsupportedFileFormat = errors.New("i18n: unsupported translation file format")

	// Loading
	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile   = errors.New("i18n: failed to parse translation file")
	ErrFailedToReadDir     = errors.New("i18n: failed to read translation directory")
	ErrNoTranslationsFound = errors.New("i18n: no translation files found")

	// Translations
	ErrEmptyLanguageCode = errors.New("i18n: empty language code")
	ErrNilTranslations   = errors.New("i18n: nil translations map")
)
