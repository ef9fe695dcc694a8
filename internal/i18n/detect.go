package i18n

import (
	"slices"
	"strings"

	locale "github.com/jeandeaual/go-locale"
)

// DefaultLanguage is used when no system locale matches a table entry.
const DefaultLanguage = "English"

var localeLanguages = map[string]string{
	"en": "English",
	"es": "Español",
}

// DetectLanguage maps the system locales onto the available language
// names, falling back to DefaultLanguage.
func DetectLanguage(available []string) string {
	locales, err := locale.GetLocales()
	if err != nil {
		return pickLanguage(nil, available)
	}
	return pickLanguage(locales, available)
}

func pickLanguage(locales, available []string) string {
	for _, loc := range locales {
		name, ok := localeLanguages[normalizeCode(loc)]
		if ok && slices.Contains(available, name) {
			return name
		}
	}
	return DefaultLanguage
}

func normalizeCode(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	if len(code) > 2 {
		code = code[:2]
	}
	return code
}
