package res

import _ "embed"

const (
	AppName     = "atvremote"
	DisplayName = "Android TV Remote"
	AppID       = "io.github.atvremote"
)

// DefaultTranslations seeds translations.json on first launch.
//
//go:embed translations/defaults.json
var DefaultTranslations []byte

//go:embed icon.svg
var AppIcon []byte

// HowToAddLanguages is written next to translations.json.
const HowToAddLanguages = "You can add your language in translations.json. Simply copy and paste the structure from the others."
