package messageformat

// Node is a single element of a parsed message.
type Node interface {
	node()
}

// Text is a literal run of characters with no interpolation.
type Text struct {
	Value string
}

// ArgType distinguishes plain arguments from the formatted variants.
type ArgType string

const (
	ArgNone   ArgType = ""
	ArgNumber ArgType = "number"
	ArgDate   ArgType = "date"
	ArgTime   ArgType = "time"
)

// Argument is a `{name}` or `{name, number|date|time}` substitution point.
type Argument struct {
	Name string
	Type ArgType
}

// Case is one branch of a plural or select construct. Label is the case
// selector (`one`, `other`, `=2`, a select category, ...) and Body is the
// recursively parsed sub-message.
type Case struct {
	Label string
	Body  []Node
}

// Plural is a `{name, plural, ...}` construct. The parser guarantees an
// `other` case is present.
type Plural struct {
	Name  string
	Cases []Case
}

// Select is a `{name, select, ...}` construct. The parser guarantees an
// `other` case is present.
type Select struct {
	Name  string
	Cases []Case
}

// Tag is an inline marker: `<name>children</name>` or `<name/>`.
type Tag struct {
	Name        string
	SelfClosing bool
	Children    []Node
}

func (Text) node()     {}
func (Argument) node() {}
func (Plural) node()   {}
func (Select) node()   {}
func (Tag) node()      {}
