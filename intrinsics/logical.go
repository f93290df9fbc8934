package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveAnd implements !And (spec.md §4.C): a sequence of boolean-
// yielding subexpressions, all resolved; any non-boolean element leaves
// the node unchanged.
func resolveAnd(rc *ResolveContext, tagged *node.Node) *node.Node {
	bools, ok := resolveBoolSeq(rc, tagged)
	if !ok {
		return tagged
	}
	result := true
	for _, b := range bools {
		result = result && b
	}
	return boolScalar(result)
}

// resolveOr implements !Or (spec.md §4.C).
func resolveOr(rc *ResolveContext, tagged *node.Node) *node.Node {
	bools, ok := resolveBoolSeq(rc, tagged)
	if !ok {
		return tagged
	}
	result := false
	for _, b := range bools {
		result = result || b
	}
	return boolScalar(result)
}

// resolveNot implements !Not (spec.md §4.C): a one-element sequence
// holding the boolean-yielding subexpression to negate.
func resolveNot(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 1 {
		return tagged
	}
	b, ok := asBool(ResolveDeep(rc, tagged.Items[0]))
	if !ok {
		return tagged
	}
	return boolScalar(!b)
}

func resolveBoolSeq(rc *ResolveContext, tagged *node.Node) ([]bool, bool) {
	if tagged.Kind != node.KindSeq || len(tagged.Items) == 0 {
		return nil, false
	}
	out := make([]bool, len(tagged.Items))
	for i, item := range tagged.Items {
		b, ok := asBool(ResolveDeep(rc, item))
		if !ok {
			return nil, false
		}
		out[i] = b
	}
	return out, true
}
