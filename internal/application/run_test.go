package application

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"i18ncheck/internal/domain"
	"i18ncheck/pkg/messageformat"
)

// fakeCatalog satisfies the CatalogSource port from in-memory documents.
type fakeCatalog struct {
	docs    map[string]any // "locale/namespace" -> decoded document
	errs    map[string]error
	locales []string
	listErr error
}

func (f *fakeCatalog) TargetLocales(sourceLocale string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.locales, nil
}

func (f *fakeCatalog) Load(locale, namespace string) (any, error) {
	key := locale + "/" + namespace
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	doc, ok := f.docs[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return doc, nil
}

func (f *fakeCatalog) Path(locale, namespace string) string {
	return "locales/" + locale + "/" + namespace + ".json"
}

// grammarParser backs the port with the real library for end-to-end runs.
type grammarParser struct{}

func (grammarParser) Parse(message string) ([]messageformat.Node, error) {
	return messageformat.Parse(message)
}

func TestRunFullPass(t *testing.T) {
	catalog := &fakeCatalog{
		docs: map[string]any{
			"en/game": map[string]any{"greet": "Hello {name}", "bye": "Bye"},
			"en/site": map[string]any{"title": "Site"},
			"fr/game": map[string]any{"greet": "Salut {name}", "bye": "Au revoir"},
			"fr/site": map[string]any{"title": "Site"},
			"ko/game": map[string]any{"greet": "안녕"},
			// ko/site missing entirely.
		},
		locales: []string{"fr", "ko"},
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game", "site"})

	result, err := validator.Run("en")
	require.NoError(t, err)

	require.Equal(t, []string{"fr", "ko"}, result.Locales)
	require.Equal(t, &domain.Coverage{Total: 3, Translated: 3}, result.Coverage["fr"])
	// ko: greet present (1 translated), bye missing, site file unloadable
	// but its single source key still counts.
	require.Equal(t, &domain.Coverage{Total: 3, Translated: 1}, result.Coverage["ko"])

	var messages []string
	for _, issue := range result.Issues {
		messages = append(messages, issue.Locale+"/"+issue.Namespace+"/"+issue.Key+": "+issue.Message)
	}
	require.Contains(t, messages, "ko/game/greet: missing placeholder: name")
	require.Contains(t, messages, "ko/game/bye: missing translation")
	require.True(t, domain.HasErrors(result.Issues))

	fileLevel := 0
	for _, issue := range result.Issues {
		if issue.Key == domain.KeyFile {
			fileLevel++
			require.Equal(t, "ko", issue.Locale)
			require.Equal(t, "site", issue.Namespace)
		}
	}
	require.Equal(t, 1, fileLevel, "missing ko/site must yield exactly one file-level issue")
}

func TestRunCleanPassHasNoIssues(t *testing.T) {
	catalog := &fakeCatalog{
		docs: map[string]any{
			"en/game": map[string]any{"teams": "{count, plural, one {# team} other {# teams}}"},
			"ko/game": map[string]any{"teams": "{count}개 팀"},
		},
		locales: []string{"ko"},
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game"})

	result, err := validator.Run("en")
	require.NoError(t, err)
	require.Empty(t, result.Issues)
	require.Equal(t, &domain.Coverage{Total: 1, Translated: 1}, result.Coverage["ko"])
}

func TestRunSourceUnreadableIsFatal(t *testing.T) {
	catalog := &fakeCatalog{
		docs:    map[string]any{},
		locales: []string{"fr"},
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game"})

	_, err := validator.Run("en")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrSourceLocaleUnreadable)
	require.Contains(t, err.Error(), "locales/en/game.json")
}

func TestRunSourceSyntaxErrorIsNotFatal(t *testing.T) {
	catalog := &fakeCatalog{
		docs: map[string]any{
			"en/game": map[string]any{"bad": "oops }"},
			"fr/game": map[string]any{"bad": "oups"},
		},
		locales: []string{"fr"},
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game"})

	result, err := validator.Run("en")
	require.NoError(t, err)

	// One error against the source locale itself; the target still compares
	// against the empty placeholder set extracted from the broken message.
	require.Len(t, result.Issues, 1)
	require.Equal(t, "en", result.Issues[0].Locale)
	require.Contains(t, result.Issues[0].Message, "invalid message syntax")
	require.Equal(t, &domain.Coverage{Total: 1, Translated: 1}, result.Coverage["fr"])
}

func TestRunFlagsMalformedLocaleDirectory(t *testing.T) {
	catalog := &fakeCatalog{
		docs: map[string]any{
			"en/game":      map[string]any{"a": "x"},
			"not-a-!/game": map[string]any{"a": "x"},
		},
		locales: []string{"not-a-!"},
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game"})

	result, err := validator.Run("en")
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	require.Equal(t, domain.SeverityWarning, result.Issues[0].Severity)
	require.Contains(t, result.Issues[0].Message, "not a valid language tag")
}

func TestRunDiscoveryFailureIsFatal(t *testing.T) {
	catalog := &fakeCatalog{
		docs:    map[string]any{"en/game": map[string]any{"a": "x"}},
		listErr: errors.New("permission denied"),
	}
	validator := NewValidator(catalog, grammarParser{}, []string{"game"})

	_, err := validator.Run("en")
	require.Error(t, err)
	require.Contains(t, err.Error(), "discover target locales")
}
