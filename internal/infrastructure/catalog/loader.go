package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"i18ncheck/internal/ports/output"
)

// Ensure Loader implements the output.CatalogSource port.
var _ output.CatalogSource = (*Loader)(nil)

// Loader reads locale catalogs from a directory tree of the form
// {root}/{locale}/{namespace}.json.
type Loader struct {
	root string
}

func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// TargetLocales lists the locale subdirectories of the root, excluding the
// source locale's own directory and hidden entries, in lexical order.
func (l *Loader) TargetLocales(sourceLocale string) ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read locales directory %s: %w", l.root, err)
	}

	var locales []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || name == sourceLocale || strings.HasPrefix(name, ".") {
			continue
		}
		locales = append(locales, name)
	}
	return locales, nil
}

// Load reads and decodes one namespace document. A missing file or invalid
// JSON comes back as an error for the comparator to record; it is never
// fatal for target locales.
func (l *Loader) Load(locale, namespace string) (any, error) {
	data, err := os.ReadFile(filepath.Join(l.root, locale, namespace+".json"))
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc, nil
}

// Path returns the namespace file path used in reports and CI annotations,
// always with forward slashes. An empty namespace resolves to the locale
// directory itself (locale-level findings).
func (l *Loader) Path(locale, namespace string) string {
	if namespace == "" {
		return filepath.ToSlash(filepath.Join(l.root, locale))
	}
	return filepath.ToSlash(filepath.Join(l.root, locale, namespace+".json"))
}
