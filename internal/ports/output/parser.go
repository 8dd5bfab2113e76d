package output

import "i18ncheck/pkg/messageformat"

// MessageParser is the message-grammar capability the validation core
// depends on. Implementations return the parsed node tree, or a descriptive
// error for the first malformed construct encountered.
type MessageParser interface {
	Parse(message string) ([]messageformat.Node, error)
}
