package application

import (
	"fmt"

	"golang.org/x/text/language"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

// Result accumulates everything one validation pass produced.
type Result struct {
	SourceLocale string
	// Locales lists the target locales in discovery order.
	Locales  []string
	Issues   []domain.Issue
	Coverage map[string]*domain.Coverage
}

// Validator orchestrates the full batch pass: load and audit the source
// locale, discover target locales, then run one comparison per
// (locale, namespace) pair. Sequential by design — the input set is small
// and bounded (fixed namespace count × discovered locale count).
type Validator struct {
	catalog    output.CatalogSource
	comparator *Comparator
	namespaces []string
}

func NewValidator(catalog output.CatalogSource, parser output.MessageParser, namespaces []string) *Validator {
	return &Validator{
		catalog:    catalog,
		comparator: NewComparator(parser),
		namespaces: namespaces,
	}
}

// Run performs one validation pass. The returned error is non-nil only for
// fatal conditions (an unreadable source-locale file, or an unlistable
// locale root); every other finding lands in Result.Issues.
func (v *Validator) Run(sourceLocale string) (*Result, error) {
	result := &Result{
		SourceLocale: sourceLocale,
		Coverage:     map[string]*domain.Coverage{},
	}

	sources := make([]*SourceNamespace, 0, len(v.namespaces))
	for _, namespace := range v.namespaces {
		doc, err := v.catalog.Load(sourceLocale, namespace)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v",
				domain.ErrSourceLocaleUnreadable, v.catalog.Path(sourceLocale, namespace), err)
		}
		src, issues := v.comparator.BuildSource(sourceLocale, namespace, doc)
		result.Issues = append(result.Issues, issues...)
		sources = append(sources, src)
	}

	locales, err := v.catalog.TargetLocales(sourceLocale)
	if err != nil {
		return nil, fmt.Errorf("discover target locales: %w", err)
	}

	for _, locale := range locales {
		result.Locales = append(result.Locales, locale)
		cov := &domain.Coverage{}
		result.Coverage[locale] = cov

		if _, err := language.Parse(locale); err != nil {
			result.Issues = append(result.Issues, domain.Issue{
				Severity: domain.SeverityWarning,
				Locale:   locale,
				Key:      domain.KeyFile,
				Message:  fmt.Sprintf("directory name is not a valid language tag: %v", err),
			})
		}

		for i, namespace := range v.namespaces {
			doc, loadErr := v.catalog.Load(locale, namespace)
			issues, inc := v.comparator.Compare(locale, sources[i], doc, loadErr)
			result.Issues = append(result.Issues, issues...)
			cov.Add(inc)
		}
	}

	return result, nil
}
