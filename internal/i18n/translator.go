// Package i18n resolves UI strings from the user-editable translation table.
package i18n

import (
	"slices"
	"sync"

	"atvremote/internal/models"
)

// Translator looks keys up in the active language. A key missing from
// the language, or a language missing from the table, renders as the key.
type Translator struct {
	mu       sync.RWMutex
	table    models.Translations
	language string
}

func NewTranslator(table models.Translations, language string) *Translator {
	return &Translator{table: table, language: language}
}

func (t *Translator) T(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.table.Messages[t.language][key]; ok {
		return msg
	}
	return key
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

func (t *Translator) SetLanguage(language string) {
	t.mu.Lock()
	t.language = language
	t.mu.Unlock()
}

// Languages lists language names in file order.
func (t *Translator) Languages() []string {
	return slices.Clone(t.table.Languages)
}

// SelectedIndex is the position of the active language in Languages, or 0
// when the active language is not in the table.
func (t *Translator) SelectedIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := slices.Index(t.table.Languages, t.language); i >= 0 {
		return i
	}
	return 0
}
