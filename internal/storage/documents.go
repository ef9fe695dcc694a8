package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"atvremote/internal/models"
	"atvremote/pkg/jsonhelper"
	"atvremote/res"
)

const (
	ipsFile          = "ips.json"
	languageFile     = "language.json"
	translationsFile = "translations.json"
	howToFile        = "how_to_add_languages.txt"
)

// LanguageDetector picks the initial language from the available names
// when language.json does not exist yet.
type LanguageDetector func(available []string) string

// Documents holds the in-memory copies of the three JSON files. Every
// mutation rewrites the corresponding file wholesale.
type Documents struct {
	storage *AppStorage

	mu           sync.RWMutex
	ips          models.IPList
	language     models.LanguagePref
	translations models.Translations
}

// OpenDocuments loads translations.json, language.json and ips.json,
// creating any that are missing, and writes the how-to file once.
func OpenDocuments(s *AppStorage, detect LanguageDetector) (*Documents, error) {
	d := &Documents{storage: s}

	tr, err := d.loadTranslations()
	if err != nil {
		return nil, err
	}
	d.translations = tr

	if d.language, err = d.loadLanguage(detect); err != nil {
		return nil, err
	}
	if d.ips, err = d.loadIPs(); err != nil {
		return nil, err
	}
	if _, err := s.WriteFileIfAbsent(s.Path(howToFile), []byte(res.HowToAddLanguages)); err != nil {
		return nil, fmt.Errorf("write %s: %w", howToFile, err)
	}
	return d, nil
}

func (d *Documents) loadTranslations() (models.Translations, error) {
	path := d.storage.Path(translationsFile)
	if _, err := d.storage.WriteFileIfAbsent(path, res.DefaultTranslations); err != nil {
		return models.Translations{}, fmt.Errorf("seed %s: %w", translationsFile, err)
	}

	data, err := d.storage.ReadFile(path)
	if err != nil {
		return models.Translations{}, fmt.Errorf("read %s: %w", translationsFile, err)
	}
	return ParseTranslations(data)
}

// ParseTranslations decodes a translations document keeping language order.
func ParseTranslations(data []byte) (models.Translations, error) {
	langs, msgs, err := jsonhelper.DecodeOrdered[map[string]string](data)
	if err != nil {
		return models.Translations{}, fmt.Errorf("parse %s: %w", translationsFile, err)
	}
	return models.Translations{Languages: langs, Messages: msgs}, nil
}

func (d *Documents) loadLanguage(detect LanguageDetector) (models.LanguagePref, error) {
	path := d.storage.Path(languageFile)
	data, err := d.storage.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		pref := models.LanguagePref{Language: "English"}
		if detect != nil {
			pref.Language = detect(d.translations.Languages)
		}
		return pref, d.save(languageFile, pref)
	}
	if err != nil {
		return models.LanguagePref{}, fmt.Errorf("read %s: %w", languageFile, err)
	}
	return jsonhelper.Decode[models.LanguagePref](data)
}

func (d *Documents) loadIPs() (models.IPList, error) {
	path := d.storage.Path(ipsFile)
	data, err := d.storage.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		ips := models.IPList{IPAddresses: []string{}}
		return ips, d.save(ipsFile, ips)
	}
	if err != nil {
		return models.IPList{}, fmt.Errorf("read %s: %w", ipsFile, err)
	}

	ips, err := jsonhelper.Decode[models.IPList](data)
	if err != nil {
		return models.IPList{}, err
	}
	if ips.IPAddresses == nil {
		ips.IPAddresses = []string{}
	}
	return ips, nil
}

func (d *Documents) save(name string, v any) error {
	data, err := jsonhelper.Encode(v)
	if err != nil {
		return err
	}
	if err := d.storage.WriteFile(d.storage.Path(name), data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Addresses returns a copy of the saved connection list.
func (d *Documents) Addresses() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.ips.IPAddresses)
}

// AddAddress appends addr and rewrites ips.json unless addr is blank or
// already saved. It reports whether the list changed.
func (d *Documents) AddAddress(addr string) (bool, error) {
	if addr == "" {
		return false, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ips.Contains(addr) {
		return false, nil
	}
	next := models.IPList{IPAddresses: append(slices.Clone(d.ips.IPAddresses), addr)}
	if err := d.save(ipsFile, next); err != nil {
		return false, err
	}
	d.ips = next
	return true, nil
}

func (d *Documents) Language() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.language.Language
}

// SetLanguage persists the active language name.
func (d *Documents) SetLanguage(lang string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	pref := models.LanguagePref{Language: lang}
	if err := d.save(languageFile, pref); err != nil {
		return err
	}
	d.language = pref
	return nil
}

// Translations returns the table as loaded at startup.
func (d *Documents) Translations() models.Translations {
	return d.translations
}
