package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var LocalesFS embed.FS

const (
	KeyRateLimited            = "rate_limited"
	KeyCodeRequired           = "code_required"
	KeyCodeAndMessageRequired = "code_and_message_required"
	KeyCodeExists             = "code_exists"
	KeyUnauthorized           = "unauthorized"
	KeyInvalidRequest         = "invalid_request"
	KeyInvalidID              = "invalid_id"
	KeyTooManyRequests        = "too_many_requests"
	KeyInternalError          = "internal_error"
)

type Translator struct {
	lang         string
	translations map[string]string
}

// NewTranslator loads locales/<lang>.yaml from fsys.
func NewTranslator(fsys fs.FS, lang string) (*Translator, error) {
	filePath := path.Join("locales", lang+".yaml")

	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file %s: %w", filePath, err)
	}

	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation file %s: %w", filePath, err)
	}

	return &Translator{lang: lang, translations: translations}, nil
}

// T returns the message for key, formatted with args. Unknown keys come back as-is.
func (t *Translator) T(key string, args ...any) string {
	format, ok := t.translations[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}

func (t *Translator) Lang() string {
	return t.lang
}
