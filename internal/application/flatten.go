package application

import "strconv"

// Flatten converts a decoded JSON document into a flat mapping from
// dot/index-separated key path to string value. Only string leaves are
// recorded; numbers, booleans and nulls are dropped. Pure function of its
// input: the tree is finite, so plain recursion always terminates.
func Flatten(doc any) map[string]string {
	out := map[string]string{}
	flattenInto(doc, "", out)
	return out
}

func flattenInto(value any, prefix string, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			flattenInto(child, joinPath(prefix, key), out)
		}
	case []any:
		for i, child := range v {
			flattenInto(child, joinPath(prefix, strconv.Itoa(i)), out)
		}
	case string:
		if prefix != "" {
			out[prefix] = v
		}
	default:
		// Non-string leaf (number, bool, null): not a translatable unit.
	}
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
