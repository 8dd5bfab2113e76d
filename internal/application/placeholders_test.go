package application

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"i18ncheck/pkg/messageformat"
)

// Extraction is tested against hand-built trees so it exercises the
// structural walk, independent of the grammar parser.
func TestPlaceholders(t *testing.T) {
	set := func(names ...string) map[string]struct{} {
		out := map[string]struct{}{}
		for _, name := range names {
			out[name] = struct{}{}
		}
		return out
	}

	tests := []struct {
		name  string
		nodes []messageformat.Node
		want  map[string]struct{}
	}{
		{
			name:  "text contributes nothing",
			nodes: []messageformat.Node{messageformat.Text{Value: "hello {not_a_placeholder}"}},
			want:  set(),
		},
		{
			name: "arguments of every type share one namespace",
			nodes: []messageformat.Node{
				messageformat.Argument{Name: "hero"},
				messageformat.Argument{Name: "count", Type: messageformat.ArgNumber},
				messageformat.Argument{Name: "when", Type: messageformat.ArgDate},
			},
			want: set("hero", "count", "when"),
		},
		{
			name: "plural controller recorded once, cases recursed",
			nodes: []messageformat.Node{
				messageformat.Plural{Name: "count", Cases: []messageformat.Case{
					{Label: "one", Body: []messageformat.Node{messageformat.Text{Value: "# team"}}},
					{Label: "other", Body: []messageformat.Node{
						messageformat.Text{Value: "# teams led by "},
						messageformat.Argument{Name: "hero"},
					}},
				}},
			},
			want: set("count", "hero"),
		},
		{
			name: "case labels are not placeholders",
			nodes: []messageformat.Node{
				messageformat.Select{Name: "side", Cases: []messageformat.Case{
					{Label: "attack", Body: []messageformat.Node{messageformat.Text{Value: "x"}}},
					{Label: "other", Body: []messageformat.Node{messageformat.Text{Value: "y"}}},
				}},
			},
			want: set("side"),
		},
		{
			name: "tags are scoped apart from same-named arguments",
			nodes: []messageformat.Node{
				messageformat.Argument{Name: "link"},
				messageformat.Tag{Name: "link", Children: []messageformat.Node{
					messageformat.Argument{Name: "url"},
				}},
				messageformat.Tag{Name: "br", SelfClosing: true},
			},
			want: set("link", "<link>", "url", "<br>"),
		},
		{
			name: "nested constructs",
			nodes: []messageformat.Node{
				messageformat.Select{Name: "side", Cases: []messageformat.Case{
					{Label: "attack", Body: []messageformat.Node{
						messageformat.Plural{Name: "n", Cases: []messageformat.Case{
							{Label: "other", Body: []messageformat.Node{
								messageformat.Tag{Name: "b", Children: []messageformat.Node{
									messageformat.Argument{Name: "target"},
								}},
							}},
						}},
					}},
					{Label: "other", Body: nil},
				}},
			},
			want: set("side", "n", "<b>", "target"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placeholders(tt.nodes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Placeholders mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Reordering case branches must not change the extracted set.
func TestPlaceholdersIgnoreCaseOrder(t *testing.T) {
	caseA := messageformat.Case{Label: "one", Body: []messageformat.Node{messageformat.Argument{Name: "a"}}}
	caseB := messageformat.Case{Label: "other", Body: []messageformat.Node{messageformat.Argument{Name: "b"}}}

	forward := Placeholders([]messageformat.Node{messageformat.Plural{Name: "n", Cases: []messageformat.Case{caseA, caseB}}})
	reversed := Placeholders([]messageformat.Node{messageformat.Plural{Name: "n", Cases: []messageformat.Case{caseB, caseA}}})
	if diff := cmp.Diff(forward, reversed); diff != "" {
		t.Errorf("placeholder set depends on case order:\n%s", diff)
	}
}
