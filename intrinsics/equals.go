package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveEquals implements !Equals (spec.md §4.C): argument [a, b]; both
// resolved, result is the boolean a == b compared on their string forms.
func resolveEquals(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 2 {
		return tagged
	}
	a, aok := stringify(ResolveDeep(rc, tagged.Items[0]))
	b, bok := stringify(ResolveDeep(rc, tagged.Items[1]))
	if !aok || !bok {
		return tagged
	}
	return boolScalar(a == b)
}

func boolScalar(b bool) *node.Node {
	if b {
		return node.NewScalar("true")
	}
	return node.NewScalar("false")
}
