package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveIf implements !If (spec.md §4.C): argument
// [condition_name, then, else]; looks up and resolves the named
// condition, then returns the matching (recursively resolved) branch.
func resolveIf(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 3 {
		return tagged
	}
	name, ok := tagged.Items[0].AsString()
	if !ok {
		return tagged
	}
	expr, ok := rc.Input.Conditions[name]
	if !ok {
		return tagged
	}
	cond, ok := asBool(ResolveDeep(rc, expr))
	if !ok {
		return tagged
	}
	if cond {
		return ResolveDeep(rc, tagged.Items[1])
	}
	return ResolveDeep(rc, tagged.Items[2])
}
