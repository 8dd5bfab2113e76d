package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default namespace set: one JSON file per namespace in every locale
// directory.
var defaultNamespaces = []string{"game", "site", "pages", "error", "faq"}

type Config struct {
	LocalesDir   string
	SourceLocale string
	Namespaces   []string
	ReportLocale string
	CI           bool
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (CI, etc.).
	}

	cfg := &Config{
		LocalesDir:   os.Getenv("LOCALES_DIR"),
		SourceLocale: os.Getenv("SOURCE_LOCALE"),
		ReportLocale: os.Getenv("REPORT_LOCALE"),
		CI:           os.Getenv("CI") != "",
	}
	if raw := strings.TrimSpace(os.Getenv("NAMESPACES")); raw != "" {
		for _, namespace := range strings.Split(raw, ",") {
			if namespace = strings.TrimSpace(namespace); namespace != "" {
				cfg.Namespaces = append(cfg.Namespaces, namespace)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les règles et valeurs par défaut sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = "locales"
	}
	if strings.TrimSpace(c.SourceLocale) == "" {
		c.SourceLocale = "en"
	}
	if strings.TrimSpace(c.ReportLocale) == "" {
		c.ReportLocale = "en"
	}
	if len(c.Namespaces) == 0 {
		c.Namespaces = append([]string(nil), defaultNamespaces...)
	}

	for _, namespace := range c.Namespaces {
		if strings.ContainsAny(namespace, `/\`) || namespace == ".." {
			return fmt.Errorf("config: NAMESPACES contient un nom invalide (%q)", namespace)
		}
	}
	if strings.ContainsAny(c.SourceLocale, `/\`) {
		return fmt.Errorf("config: SOURCE_LOCALE invalide (%q)", c.SourceLocale)
	}

	return nil
}
