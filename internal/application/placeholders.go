package application

import "i18ncheck/pkg/messageformat"

// Placeholders walks a parsed message tree and collects the set of distinct
// identifiers it references for runtime substitution: argument names, the
// controlling name of each plural/select construct (once, regardless of how
// many case branches it controls), and tag names. Tags are normalized as
// "<name>" so a tag and an argument sharing the same name stay distinct.
// Case labels never contribute, and text contributes nothing, so names
// embedded in literal case text are not attributed to the outer scope.
func Placeholders(nodes []messageformat.Node) map[string]struct{} {
	out := map[string]struct{}{}
	collect(nodes, out)
	return out
}

func collect(nodes []messageformat.Node, out map[string]struct{}) {
	for _, node := range nodes {
		switch n := node.(type) {
		case messageformat.Argument:
			out[n.Name] = struct{}{}
		case messageformat.Plural:
			out[n.Name] = struct{}{}
			for _, c := range n.Cases {
				collect(c.Body, out)
			}
		case messageformat.Select:
			out[n.Name] = struct{}{}
			for _, c := range n.Cases {
				collect(c.Body, out)
			}
		case messageformat.Tag:
			out["<"+n.Name+">"] = struct{}{}
			collect(n.Children, out)
		case messageformat.Text:
			// Literal text references nothing.
		}
	}
}
