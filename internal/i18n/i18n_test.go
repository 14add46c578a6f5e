package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllLanguagesHaveSameKeys(t *testing.T) {
	for key := range translations[EN] {
		for _, lang := range AvailableLanguages() {
			assert.Contains(t, translations[lang], key, "%s missing %q", lang, key)
		}
	}
	assert.Len(t, translations[RU], len(translations[EN]))
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(EN)

	assert.True(t, SetLanguage(RU))
	assert.Equal(t, RU, GetLanguage())
	assert.Equal(t, "Уровень 3", Tf("tray_level", 3))

	assert.False(t, SetLanguage("de"))
	assert.Equal(t, RU, GetLanguage())
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T("no_such_key"))
}
