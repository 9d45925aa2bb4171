// Package i18n loads message catalogs and renders localized templates.
//
// Translations are grouped by language and addressed with dot-separated keys. Templates use
// named placeholders in the form %{name}. A key that names a nested map holding a "_" entry
// resolves to that entry, so "validation.size" and "validation.size.min" can live side by side.
//
// # Loading
//
// A TranslationAdapter supplies the catalog. Ready-made adapters cover in-memory maps, single
// files, directories, any fs.FS (typically an embed.FS) and ordered merges of other adapters:
//
//	//go:embed translations/*.yaml
//	var bundle embed.FS
//
//	adapter := i18n.NewMultiAdapter(
//		i18n.NewEmbeddedFsAdapter(nil, bundle, "translations"),
//		i18n.NewDirectoryAdapter(nil, "/etc/app/messages"),
//	)
//
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("en", "validation.equals", "value", "321")
//	// msg == "Must be equal to [321]"
//
// Passing a nil Parser to an adapter selects YAML or JSON from the file extension.
//
// # Locales
//
// MatchLanguage negotiates a requested BCP 47 tag against the supported set using
// golang.org/x/text/language, falling back to a default. SetLocale and GetLocale carry the
// caller's locale through a context.Context.
//
// # Error Handling
//
// Loading errors wrap the package sentinels and can be checked with errors.Is:
//
//	if errors.Is(err, i18n.ErrNoTranslationsFound) {
//		// empty catalog directory
//	}
package i18n
