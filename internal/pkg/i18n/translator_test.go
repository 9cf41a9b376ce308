//go:build unit

package i18n_test

import (
	"testing"
	"testing/fstest"

	"code-lookup/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslator(t *testing.T) {
	t.Run("embedded locales load", func(t *testing.T) {
		for _, lang := range []string{"ru", "en"} {
			tr, err := i18n.NewTranslator(i18n.LocalesFS, lang)
			require.NoError(t, err, lang)
			assert.NotEqual(t, i18n.KeyRateLimited, tr.T(i18n.KeyRateLimited, 5), lang)
		}
	})

	t.Run("formats arguments", func(t *testing.T) {
		tr, err := i18n.NewTranslator(i18n.LocalesFS, "ru")
		require.NoError(t, err)
		assert.Equal(t, "Слишком много попыток. Подождите 42 сек.", tr.T(i18n.KeyRateLimited, 42))
	})

	t.Run("unknown key falls back to the key", func(t *testing.T) {
		tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
		require.NoError(t, err)
		assert.Equal(t, "no_such_key", tr.T("no_such_key"))
	})

	t.Run("locales define the same keys", func(t *testing.T) {
		ru, err := i18n.NewTranslator(i18n.LocalesFS, "ru")
		require.NoError(t, err)
		en, err := i18n.NewTranslator(i18n.LocalesFS, "en")
		require.NoError(t, err)

		for _, key := range []string{
			i18n.KeyRateLimited, i18n.KeyCodeRequired, i18n.KeyCodeAndMessageRequired,
			i18n.KeyCodeExists, i18n.KeyUnauthorized, i18n.KeyInvalidRequest,
			i18n.KeyInvalidID, i18n.KeyTooManyRequests, i18n.KeyInternalError,
		} {
			assert.NotEqual(t, key, ru.T(key), "ru missing %s", key)
			assert.NotEqual(t, key, en.T(key), "en missing %s", key)
		}
	})

	t.Run("missing locale fails", func(t *testing.T) {
		_, err := i18n.NewTranslator(i18n.LocalesFS, "xx")
		assert.Error(t, err)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/bad.yaml": &fstest.MapFile{Data: []byte("rate_limited: [unclosed")},
		}
		_, err := i18n.NewTranslator(fsys, "bad")
		assert.Error(t, err)
	})
}
