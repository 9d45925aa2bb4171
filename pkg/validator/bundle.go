package validator

import (
	"embed"

	"github.com/glockbender/kvalidity/pkg/i18n"
)

//go:embed translations/*.yaml
var bundleFS embed.FS

func bundleAdapter() i18n.TranslationAdapter {
	return i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), bundleFS, "translations")
}
