package intrinsics

import (
	"strings"

	"github.com/lex00/cfn-render-go/node"
)

// resolveJoin implements !Join (spec.md §4.C): argument [delimiter, items];
// items is resolved recursively and each element coerced to a string
// before concatenation.
func resolveJoin(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 2 {
		return tagged
	}
	delim, ok := stringify(ResolveDeep(rc, tagged.Items[0]))
	if !ok {
		return tagged
	}

	itemsNode := ResolveDeep(rc, tagged.Items[1])
	if itemsNode.Kind != node.KindSeq {
		return tagged
	}

	parts := make([]string, len(itemsNode.Items))
	for i, item := range itemsNode.Items {
		s, ok := stringify(item)
		if !ok {
			return tagged
		}
		parts[i] = s
	}

	return node.NewScalar(strings.Join(parts, delim))
}
