package application

import (
	"fmt"
	"sort"
	"strings"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

// SourceNamespace is the flattened, syntax-audited schema for one namespace
// of the source locale. Its key set is authoritative: target catalogs must
// not introduce keys that are absent here.
type SourceNamespace struct {
	Namespace string
	Messages  map[string]string
	// Keys holds the key paths in sorted order so issue order is
	// deterministic across runs.
	Keys []string
	// Placeholders maps each key to its extracted placeholder set. A source
	// message that failed its own syntax audit keeps an empty set.
	Placeholders map[string]map[string]struct{}
}

// Comparator checks target namespace documents against the source schema.
type Comparator struct {
	parser output.MessageParser
}

func NewComparator(parser output.MessageParser) *Comparator {
	return &Comparator{parser: parser}
}

// BuildSource flattens a source-locale document and audits every message's
// syntax. Syntax errors are reported against the source locale itself but
// do not halt anything: the affected key contributes an empty placeholder
// set and target comparison proceeds.
func (c *Comparator) BuildSource(sourceLocale, namespace string, doc any) (*SourceNamespace, []domain.Issue) {
	messages := Flatten(doc)
	src := &SourceNamespace{
		Namespace:    namespace,
		Messages:     messages,
		Keys:         sortedKeys(messages),
		Placeholders: make(map[string]map[string]struct{}, len(messages)),
	}

	var issues []domain.Issue
	for _, key := range src.Keys {
		nodes, err := c.parser.Parse(messages[key])
		if err != nil {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityError,
				Locale:    sourceLocale,
				Namespace: namespace,
				Key:       key,
				Message:   fmt.Sprintf("invalid message syntax: %v", err),
			})
			src.Placeholders[key] = map[string]struct{}{}
			continue
		}
		src.Placeholders[key] = Placeholders(nodes)
	}
	return src, issues
}

// Compare checks one target namespace document against the source schema
// and returns the issues found plus this namespace's coverage increment.
// loadErr carries a failed document load (missing file, invalid JSON): the
// pair then yields a single file-level error and no key-level checks, but
// every source key still counts toward the coverage total.
func (c *Comparator) Compare(locale string, src *SourceNamespace, doc any, loadErr error) ([]domain.Issue, domain.Coverage) {
	cov := domain.Coverage{Total: len(src.Keys)}
	var issues []domain.Issue

	if loadErr != nil {
		issues = append(issues, domain.Issue{
			Severity:  domain.SeverityError,
			Locale:    locale,
			Namespace: src.Namespace,
			Key:       domain.KeyFile,
			Message:   fmt.Sprintf("file missing or invalid: %v", loadErr),
		})
		return issues, cov
	}

	target := Flatten(doc)

	for _, key := range sortedKeys(target) {
		if _, ok := src.Messages[key]; !ok {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityError,
				Locale:    locale,
				Namespace: src.Namespace,
				Key:       key,
				Message:   "extra key not in source",
			})
		}
	}

	for _, key := range src.Keys {
		value, ok := target[key]
		if !ok {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityWarning,
				Locale:    locale,
				Namespace: src.Namespace,
				Key:       key,
				Message:   "missing translation",
			})
			continue
		}
		cov.Translated++
		if strings.TrimSpace(value) == "" {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityWarning,
				Locale:    locale,
				Namespace: src.Namespace,
				Key:       key,
				Message:   "empty value",
			})
			continue
		}

		nodes, err := c.parser.Parse(value)
		if err != nil {
			issues = append(issues, domain.Issue{
				Severity:  domain.SeverityError,
				Locale:    locale,
				Namespace: src.Namespace,
				Key:       key,
				Message:   fmt.Sprintf("invalid message syntax: %v", err),
			})
			continue
		}

		targetPlaceholders := Placeholders(nodes)
		sourcePlaceholders := src.Placeholders[key]
		for _, name := range sortedSet(sourcePlaceholders) {
			if _, ok := targetPlaceholders[name]; !ok {
				issues = append(issues, domain.Issue{
					Severity:  domain.SeverityError,
					Locale:    locale,
					Namespace: src.Namespace,
					Key:       key,
					Message:   "missing placeholder: " + name,
				})
			}
		}
		for _, name := range sortedSet(targetPlaceholders) {
			if _, ok := sourcePlaceholders[name]; !ok {
				issues = append(issues, domain.Issue{
					Severity:  domain.SeverityError,
					Locale:    locale,
					Namespace: src.Namespace,
					Key:       key,
					Message:   "unknown placeholder: " + name,
				})
			}
		}
	}

	return issues, cov
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
