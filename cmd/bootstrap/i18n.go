package bootstrap

import (
	"code-lookup/internal/pkg/config"
	"code-lookup/internal/pkg/i18n"

	"go.uber.org/fx"
)

var I18nModule = fx.Module("i18n",
	fx.Provide(
		NewTranslator,
	),
)

func NewTranslator(cfg config.Config) (*i18n.Translator, error) {
	return i18n.NewTranslator(i18n.LocalesFS, cfg.Locale)
}
