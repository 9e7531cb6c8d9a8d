// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

const fallbackLang = "en"

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var (
	instance *I18n
	mu       sync.Mutex
)

// Initialize loads the embedded catalogues. It is safe to call more than once;
// later calls only change the default language.
func Initialize(defaultLang string) error {
	mu.Lock()
	defer mu.Unlock()

	if defaultLang == "" {
		defaultLang = fallbackLang
	}

	if instance != nil {
		instance.mu.Lock()
		instance.defaultLang = defaultLang
		instance.mu.Unlock()
		return nil
	}

	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
	}
	if err := i.LoadTranslations(localeFS, "locales"); err != nil {
		return err
	}
	if _, ok := i.translations[defaultLang]; !ok {
		return fmt.Errorf("no translations for default locale %q", defaultLang)
	}

	instance = i
	return nil
}

func (i *I18n) LoadTranslations(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list locale files: %w", err)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}

		i.mu.Lock()
		i.translations[lang] = translations
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if text, ok := i.lookup(lang, key); ok {
		return format(text, args...)
	}

	// Fallback to default language
	if lang != i.defaultLang {
		if text, ok := i.lookup(i.defaultLang, key); ok {
			return format(text, args...)
		}
	}

	// Return key if no translation found
	return key
}

func (i *I18n) lookup(lang, key string) (string, bool) {
	translations, ok := i.translations[lang]
	if !ok {
		return "", false
	}
	text, ok := translations[key]
	return text, ok
}

func format(text string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

func current() *I18n {
	mu.Lock()
	defer mu.Unlock()
	return instance
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if i := current(); i != nil {
		return i.T(lang, key, args...)
	}
	return key
}

func DefaultLang() string {
	i := current()
	if i == nil {
		return fallbackLang
	}

	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.defaultLang
}

func GetSupportedLanguages() []string {
	i := current()
	if i == nil {
		return []string{fallbackLang}
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	langs := make([]string, 0, len(i.translations))
	for lang := range i.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
