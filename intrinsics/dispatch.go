// Package intrinsics implements one resolver per CFN intrinsic tag
// (spec.md §4.C). Every resolver is a total, idempotent function of a
// document root, an input context and an argument node: it either returns
// a replacement node, or the original node unchanged when it can't
// resolve (ResolveSkipped, spec.md §7) — it never panics or returns an
// error for malformed template content.
package intrinsics

import (
	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/tags"
)

// ResolveContext bundles everything a resolver needs besides the node
// it's resolving: the whole document (for !Ref's resource-search fallback
// and !GetAtt's resource walk), the input context (spec.md §3) and the
// set of tag names currently recognized (spec.md §6 --tags).
type ResolveContext struct {
	Root     *node.Node
	Input    *renderctx.Context
	Registry *tags.Registry
}

// ResolverFunc maps a tagged node (whose content is the intrinsic's
// argument) to a replacement. It must return tagged itself, the same
// pointer, when it cannot resolve: the walker detects "unchanged" by
// pointer identity.
type ResolverFunc func(rc *ResolveContext, tagged *node.Node) *node.Node

// dispatch is the tag-name -> resolver table referenced by §9's "Replace
// dynamic dispatch on tag names" guidance: a closed map keyed by the
// CFN tag string, rather than a chain of isinstance-style checks.
var dispatch = map[string]ResolverFunc{
	"Ref":          resolveRef,
	"Sub":          resolveSub,
	"GetAtt":       resolveGetAtt,
	"FindInMap":    resolveFindInMap,
	"Join":         resolveJoin,
	"Split":        resolveSplit,
	"Select":       resolveSelect,
	"Base64":       resolveBase64,
	"ToJsonString": resolveToJSONString,
	"Equals":       resolveEquals,
	"If":           resolveIf,
	"Condition":    resolveCondition,
	"And":          resolveAnd,
	"Or":           resolveOr,
	"Not":          resolveNot,
	"ImportValue":  resolveImportValue,
	"GetAZs":       resolveGetAZs,
}

// Resolve dispatches n (which must carry a recognized tag) to its
// resolver. Called by both the tree walker (spec.md §4.D) on each tagged
// node it visits, and by composite resolvers (Join, Select, ...) to
// recursively resolve their own sub-arguments (spec.md §4.C).
func Resolve(rc *ResolveContext, n *node.Node) *node.Node {
	if n == nil || !n.IsTagged() {
		return n
	}
	if !rc.Registry.IsRecognized(n.Tag) {
		return n
	}
	fn, ok := dispatch[n.Tag]
	if !ok {
		return n
	}
	return fn(rc, n)
}

// ResolveDeep recursively resolves n and, for containers, every element
// it holds, bottom-up: children are fully resolved before a tagged
// container's own resolver runs on them. This is the "resolve X
// recursively" behaviour spec.md §4.C asks of Join/Select/Split/FindInMap/
// Base64/ToJsonString/If/Equals/And/Or/Not, kept local to a resolver's own
// argument subtree rather than re-entering the walker (spec.md §9).
func ResolveDeep(rc *ResolveContext, n *node.Node) *node.Node {
	if n == nil {
		return n
	}

	switch n.Kind {
	case node.KindMap:
		resolvedEntries := make([]node.Entry, len(n.Entries))
		for i, e := range n.Entries {
			resolvedEntries[i] = node.Entry{Key: e.Key, Value: ResolveDeep(rc, e.Value)}
		}
		result := n
		if n.IsTagged() {
			result = &node.Node{Kind: node.KindMap, Tag: n.Tag, Entries: resolvedEntries}
			return Resolve(rc, result)
		}
		return &node.Node{Kind: node.KindMap, Entries: resolvedEntries}

	case node.KindSeq:
		resolvedItems := make([]*node.Node, len(n.Items))
		for i, item := range n.Items {
			resolvedItems[i] = ResolveDeep(rc, item)
		}
		if n.IsTagged() {
			result := &node.Node{Kind: node.KindSeq, Tag: n.Tag, Items: resolvedItems}
			return Resolve(rc, result)
		}
		return &node.Node{Kind: node.KindSeq, Items: resolvedItems}

	case node.KindTaggedScalar:
		return Resolve(rc, n)

	default:
		return n
	}
}
