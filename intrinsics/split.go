package intrinsics

import (
	"strings"

	"github.com/lex00/cfn-render-go/node"
)

// resolveSplit implements !Split (spec.md §4.C): argument
// [delimiter, source_string]; both resolved, result is a sequence of
// pieces.
func resolveSplit(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 2 {
		return tagged
	}
	delim, ok := stringify(ResolveDeep(rc, tagged.Items[0]))
	if !ok {
		return tagged
	}
	source, ok := stringify(ResolveDeep(rc, tagged.Items[1]))
	if !ok {
		return tagged
	}

	pieces := strings.Split(source, delim)
	items := make([]*node.Node, len(pieces))
	for i, p := range pieces {
		items[i] = node.NewScalar(p)
	}
	return &node.Node{Kind: node.KindSeq, Items: items}
}
