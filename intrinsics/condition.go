package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveCondition implements !Condition (spec.md §4.C): a string scalar
// naming a Conditions block entry, evaluated to its boolean result.
func resolveCondition(rc *ResolveContext, tagged *node.Node) *node.Node {
	name, ok := tagged.AsString()
	if !ok {
		return tagged
	}
	expr, ok := rc.Input.Conditions[name]
	if !ok {
		return tagged
	}
	resolved := ResolveDeep(rc, expr)
	if _, ok := asBool(resolved); !ok {
		return tagged
	}
	return resolved
}
