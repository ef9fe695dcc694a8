package models

type ConnectionStatus int

const (
	StatusDisconnected ConnectionStatus = iota
	StatusConnected
)

func (s ConnectionStatus) String() string {
	if s == StatusConnected {
		return "connected"
	}
	return "disconnected"
}

// IPList is the on-disk shape of ips.json.
type IPList struct {
	IPAddresses []string `json:"ip_addresses"`
}

// Contains reports whether addr is already saved.
func (l *IPList) Contains(addr string) bool {
	for _, a := range l.IPAddresses {
		if a == addr {
			return true
		}
	}
	return false
}

// LanguagePref is the on-disk shape of language.json.
type LanguagePref struct {
	Language string `json:"language"`
}

// Translations maps language name to message key to display string.
// Languages keeps the order the languages appear in translations.json.
type Translations struct {
	Languages []string
	Messages  map[string]map[string]string
}

func (t Translations) Has(language string) bool {
	_, ok := t.Messages[language]
	return ok
}
