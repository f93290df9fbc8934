package intrinsics

import (
	"strconv"

	"github.com/lex00/cfn-render-go/node"
)

// resolveSelect implements !Select (spec.md §4.C): argument
// [index, list]; both resolved, an out-of-range index returns the
// original node unchanged.
func resolveSelect(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 2 {
		return tagged
	}

	idxStr, ok := stringify(ResolveDeep(rc, tagged.Items[0]))
	if !ok {
		return tagged
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return tagged
	}

	list := ResolveDeep(rc, tagged.Items[1])
	if list.Kind != node.KindSeq {
		return tagged
	}
	value, ok := list.Index(idx)
	if !ok {
		return tagged
	}
	return value
}
