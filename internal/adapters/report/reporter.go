// Package report renders the validation result for humans (terminal table,
// grouped listings) and for CI (annotation lines). Formatting never affects
// the outcome: the run fails if and only if an error-severity issue exists.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"i18ncheck/internal/application"
	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

const (
	barWidth = 20
	// missingDisplayCap bounds the per-report listing of missing-translation
	// keys; the rest collapses into a "...and N more" marker.
	missingDisplayCap = 10
)

// Reporter aggregates issues and coverage into the final stdout report.
type Reporter struct {
	translator output.T
	paths      output.CatalogSource
	locale     string // language of the report labels
	ci         bool
}

func New(translator output.T, paths output.CatalogSource, locale string, ci bool) *Reporter {
	return &Reporter{translator: translator, paths: paths, locale: locale, ci: ci}
}

func (r *Reporter) label(key string, data map[string]any) string {
	return r.translator.T(r.locale, key, data)
}

// Render writes the full report: coverage table, grouped errors, summarized
// warnings, verdict, and (in CI mode) one annotation line per issue.
func (r *Reporter) Render(w io.Writer, result *application.Result) {
	fmt.Fprintln(w, r.label("report.title", map[string]any{"Locale": result.SourceLocale}))
	fmt.Fprintln(w)

	r.renderCoverage(w, result)
	r.renderErrors(w, result.Issues)
	r.renderWarnings(w, result.Issues)

	if domain.HasErrors(result.Issues) {
		fmt.Fprintln(w, color.RedString(r.label("report.fail", nil)))
	} else {
		fmt.Fprintln(w, color.GreenString(r.label("report.pass", nil)))
	}

	if r.ci {
		r.renderAnnotations(w, result.Issues)
	}
}

func (r *Reporter) renderCoverage(w io.Writer, result *application.Result) {
	fmt.Fprintln(w, r.label("report.coverage", nil))

	width := 0
	for _, locale := range result.Locales {
		if len(locale) > width {
			width = len(locale)
		}
	}
	for _, locale := range result.Locales {
		cov := result.Coverage[locale]
		pct := cov.Percent()
		fmt.Fprintf(w, "  %-*s  [%s] %s  (%d/%d)\n",
			width, locale, renderBar(pct), colorPercent(pct), cov.Translated, cov.Total)
	}
	fmt.Fprintln(w)
}

func (r *Reporter) renderErrors(w io.Writer, issues []domain.Issue) {
	var errs []domain.Issue
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			errs = append(errs, issue)
		}
	}
	if len(errs) == 0 {
		fmt.Fprintln(w, r.label("report.no_errors", nil))
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, color.RedString(r.label("report.errors", map[string]any{"Count": len(errs)})))
	for _, issue := range errs {
		fmt.Fprintf(w, "  %s: %s\n", issueLocation(issue), issue.Message)
	}
	fmt.Fprintln(w)
}

func (r *Reporter) renderWarnings(w io.Writer, issues []domain.Issue) {
	var missing []domain.Issue
	empty := 0
	var misc []domain.Issue
	for _, issue := range issues {
		if issue.Severity != domain.SeverityWarning {
			continue
		}
		switch issue.Message {
		case "missing translation":
			missing = append(missing, issue)
		case "empty value":
			empty++
		default:
			misc = append(misc, issue)
		}
	}
	if len(missing) == 0 && empty == 0 && len(misc) == 0 {
		return
	}

	fmt.Fprintln(w, color.YellowString(r.label("report.warnings", nil)))
	for _, issue := range misc {
		fmt.Fprintf(w, "  %s: %s\n", issueLocation(issue), issue.Message)
	}
	if len(missing) > 0 {
		fmt.Fprintf(w, "  %s\n", r.label("report.missing", map[string]any{"Count": len(missing)}))
		shown := missing
		if len(shown) > missingDisplayCap {
			shown = shown[:missingDisplayCap]
		}
		for _, issue := range shown {
			fmt.Fprintf(w, "    %s\n", issueLocation(issue))
		}
		if rest := len(missing) - len(shown); rest > 0 {
			fmt.Fprintf(w, "    %s\n", r.label("report.more", map[string]any{"Count": rest}))
		}
	}
	if empty > 0 {
		fmt.Fprintf(w, "  %s\n", r.label("report.empty", map[string]any{"Count": empty}))
	}
	fmt.Fprintln(w)
}

// renderAnnotations emits one GitHub workflow command per issue
// (::error file=<path>::<message>) so the CI run annotates the offending
// files directly.
func (r *Reporter) renderAnnotations(w io.Writer, issues []domain.Issue) {
	for _, issue := range issues {
		level := "error"
		if issue.Severity == domain.SeverityWarning {
			level = "warning"
		}
		path := r.paths.Path(issue.Locale, issue.Namespace)
		message := issue.Message
		if issue.Key != domain.KeyFile {
			message = issue.Key + ": " + message
		}
		fmt.Fprintf(w, "::%s file=%s::%s\n", level, path, message)
	}
}

// issueLocation formats "locale/namespace.json · key". File-level issues
// omit the key part; locale-level issues omit the namespace.
func issueLocation(issue domain.Issue) string {
	loc := issue.Locale
	if issue.Namespace != "" {
		loc += "/" + issue.Namespace + ".json"
	}
	if issue.Key != domain.KeyFile {
		loc += " · " + issue.Key
	}
	return loc
}

func renderBar(pct int) string {
	filled := pct * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func colorPercent(pct int) string {
	text := fmt.Sprintf("%3d%%", pct)
	switch {
	case pct >= 80:
		return color.GreenString(text)
	case pct >= 40:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
