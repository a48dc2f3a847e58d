package jsonschema

import (
	"embed"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// Bundle returns an initialized internationalization bundle with the
// embedded locale catalogs loaded, so callers can obtain a *i18n.Localizer
// for (*ValidationError).Localize without shipping their own translation
// files. Validation logic itself never calls this; it is purely an
// error-presentation concern, kept separate from evaluation entirely.
func Bundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocaleLoad, err)
	}
	return bundle, nil
}
