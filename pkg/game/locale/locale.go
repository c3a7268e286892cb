// Package locale loads the embedded gettext catalogs and translates UI message keys.
package locale

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogs embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
	lang    string
)

// Languages returns the language codes with an embedded catalog
func Languages() []string {
	entries, err := catalogs.ReadDir("po")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(".po")])
	}
	return langs
}

// Init loads the catalog for the given language. An empty language selects
// DefaultLanguage.
func Init(language string) error {
	if language == "" {
		language = DefaultLanguage
	}

	data, err := catalogs.ReadFile("po/" + language + ".po")
	if err != nil {
		return fmt.Errorf("locale: no catalog for %q: %w", language, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	lang = language
	mu.Unlock()
	return nil
}

// Language returns the loaded language code, or empty if Init has not been called
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// Get translates key. Before Init, or for unknown keys, the key itself is
// returned. Messages with placeholders are formatted by the caller with
// fmt.Sprintf.
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		return gotext.Get(key)
	}
	return po.Get(key)
}
