package output

// CatalogSource provides read access to the locale catalog tree: one
// directory per locale, one JSON document per namespace.
type CatalogSource interface {
	// TargetLocales lists locale directories, excluding the source locale.
	TargetLocales(sourceLocale string) ([]string, error)

	// Load reads and decodes one namespace document for a locale.
	Load(locale, namespace string) (any, error)

	// Path returns the path of a namespace file relative to the repository
	// root, used when reporting file-level findings. An empty namespace
	// addresses the locale directory itself.
	Path(locale, namespace string) string
}
