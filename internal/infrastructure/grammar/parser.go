package grammar

import (
	"i18ncheck/internal/ports/output"
	"i18ncheck/pkg/messageformat"
)

// Ensure Parser implements the output.MessageParser port.
var _ output.MessageParser = Parser{}

// Parser adapts the messageformat library to the MessageParser port.
type Parser struct{}

func (Parser) Parse(message string) ([]messageformat.Node, error) {
	return messageformat.Parse(message)
}
