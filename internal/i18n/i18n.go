// Package i18n serves UI strings from the locale files embedded in the
// data package. Lookups that miss fall back to English, then to the key
// itself, so a missing translation never blanks a label.
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/vojtechokenka/nokturo/data"
)

const fallbackLang = "en"

var (
	loadOnce sync.Once
	catalogs map[string]map[string]string
	loadErr  error
)

func load() {
	catalogs = map[string]map[string]string{}
	entries, err := fs.ReadDir(data.Locales, "locales")
	if err != nil {
		loadErr = fmt.Errorf("i18n: read locales: %w", err)
		return
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := fs.ReadFile(data.Locales, path.Join("locales", name))
		if err != nil {
			loadErr = fmt.Errorf("i18n: read %s: %w", name, err)
			return
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			loadErr = fmt.Errorf("i18n: parse %s: %w", name, err)
			return
		}
		catalogs[strings.TrimSuffix(name, ".json")] = table
	}
}

// Languages lists the locale codes that shipped with the binary.
func Languages() []string {
	loadOnce.Do(load)
	out := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		out = append(out, lang)
	}
	return out
}

// T resolves key in the given language. Unknown language falls back to
// English, and an unknown key comes back verbatim.
func T(lang, key string) string {
	loadOnce.Do(load)
	if loadErr != nil {
		return key
	}
	if table, ok := catalogs[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if lang != fallbackLang {
		if table, ok := catalogs[fallbackLang]; ok {
			if s, ok := table[key]; ok {
				return s
			}
		}
	}
	return key
}
