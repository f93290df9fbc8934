package intrinsics

import "github.com/lex00/cfn-render-go/node"

// stringify coerces a resolved node to its string form for !Join/!Sub,
// per spec.md §4.C ("coerce each item to its string form"). Containers
// have no defined string form and are rejected. A still-tagged scalar
// means ResolveDeep left it unresolved (spec.md §7 ResolveSkipped); it is
// not a literal value, so coercing resolvers must bail rather than
// swallow the unresolved tag into a string (spec.md §1/§4.C: a best-effort
// symbolic evaluator leaves what it can't resolve in place).
func stringify(n *node.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind == node.KindScalar {
		return n.Value, true
	}
	return "", false
}

// untag strips n's own tag (if any) before it's handed to ResolveDeep, so
// a resolver that recursively resolves its own argument container (e.g.
// !Base64 wrapping a nested !Join) doesn't re-dispatch to itself forever.
func untag(n *node.Node) *node.Node {
	if n == nil || n.Tag == "" {
		return n
	}
	switch n.Kind {
	case node.KindTaggedScalar:
		return node.NewScalar(n.Value)
	case node.KindMap:
		return &node.Node{Kind: node.KindMap, Entries: n.Entries}
	case node.KindSeq:
		return &node.Node{Kind: node.KindSeq, Items: n.Items}
	}
	return n
}

// asBool interprets a resolved scalar node as a boolean, accepting both
// YAML's canonical "true"/"false" and CloudFormation's historical
// capitalized forms.
func asBool(n *node.Node) (bool, bool) {
	s, ok := stringify(n)
	if !ok {
		return false, false
	}
	switch s {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}
