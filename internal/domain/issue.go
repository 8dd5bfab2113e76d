package domain

// Severity classifies a finding. Errors block the run (non-zero exit),
// warnings are advisory only.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// KeyFile is the sentinel key path for findings that concern a whole
// namespace file rather than a single key.
const KeyFile = "<file>"

// Issue is a single finding against one (locale, namespace) pair.
// Issues are accumulated in discovery order and never deduplicated.
type Issue struct {
	Severity  Severity
	Locale    string
	Namespace string
	Key       string
	Message   string
}

// HasErrors reports whether at least one error-severity issue is present.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
