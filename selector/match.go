package selector

import (
	"strconv"
	"strings"

	"github.com/lex00/cfn-render-go/node"
)

// Match is one (path, value) pair produced by walking a selector against a
// document, per spec.md §4.B.
type Match struct {
	Path  string
	Value *node.Node
}

// candidate threads a matched sub-path and node through successive Token
// steps. Range slices are yielded as one synthetic candidate: an
// UnboundRange keeps its container's path, and a BoundRange appends a
// "lo-hi" segment.
type candidate struct {
	path string
	node *node.Node
}

// Find evaluates tokens against root and returns every (path, value) match,
// threading each step's matched children into the next step's candidates.
// A mismatched token kind against a candidate's node kind simply yields no
// match for that candidate (spec.md §4.B); Find always terminates since
// token count and node depth are both finite (spec.md §8 "Selector
// totality").
func Find(root *node.Node, tokens []Token) []Match {
	candidates := []candidate{{path: "", node: root}}

	for _, tok := range tokens {
		var next []candidate
		for _, c := range candidates {
			next = append(next, step(c, tok)...)
		}
		candidates = next
		if len(candidates) == 0 {
			return nil
		}
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{Path: c.path, Value: c.node}
	}
	return matches
}

// FindString is a convenience wrapper parsing and evaluating a selector in
// one call.
func FindString(root *node.Node, selectorStr string) ([]Match, error) {
	tokens, err := Parse(selectorStr)
	if err != nil {
		return nil, err
	}
	return Find(root, tokens), nil
}

func step(c candidate, tok Token) []candidate {
	n := c.node
	switch tok.Kind {
	case KindKey:
		if n == nil || n.Kind != node.KindMap {
			return nil
		}
		v, ok := n.Get(tok.Key)
		if !ok {
			return nil
		}
		return []candidate{{path: join(c.path, tok.Key), node: v}}

	case KindWildcard:
		if n == nil || n.Kind != node.KindMap {
			return nil
		}
		out := make([]candidate, 0, len(n.Entries))
		for _, e := range n.Entries {
			out = append(out, candidate{path: join(c.path, e.Key), node: e.Value})
		}
		return out

	case KindPattern:
		if n == nil || n.Kind != node.KindMap {
			return nil
		}
		var out []candidate
		for _, e := range n.Entries {
			if tok.Pattern.MatchString(e.Key) {
				out = append(out, candidate{path: join(c.path, e.Key), node: e.Value})
			}
		}
		return out

	case KindIndex:
		if n == nil || n.Kind != node.KindSeq || tok.Index >= len(n.Items) {
			return nil
		}
		return []candidate{{path: join(c.path, strconv.Itoa(tok.Index)), node: n.Items[tok.Index]}}

	case KindBoundRange:
		if n == nil || n.Kind != node.KindSeq {
			return nil
		}
		hi := tok.Hi
		if hi > len(n.Items) {
			hi = len(n.Items)
		}
		lo := tok.Lo
		if lo > hi {
			lo = hi
		}
		slice := &node.Node{Kind: node.KindSeq, Items: append([]*node.Node{}, n.Items[lo:hi]...)}
		label := strconv.Itoa(tok.Lo) + "-" + rangeLabel(tok.Hi)
		return []candidate{{path: join(c.path, label), node: slice}}

	case KindUnboundRange:
		if n == nil || n.Kind != node.KindSeq {
			return nil
		}
		return []candidate{{path: c.path, node: n}}

	case KindPatternRange:
		if n == nil || n.Kind != node.KindSeq {
			return nil
		}
		var out []candidate
		for i, item := range n.Items {
			if s, ok := item.AsString(); ok && tok.Pattern.MatchString(s) {
				out = append(out, candidate{path: join(c.path, strconv.Itoa(i)), node: item})
			}
		}
		return out

	case KindWildcardRange:
		if n == nil || n.Kind != node.KindSeq {
			return nil
		}
		out := make([]candidate, 0, len(n.Items))
		for i, item := range n.Items {
			out = append(out, candidate{path: join(c.path, strconv.Itoa(i)), node: item})
		}
		return out

	case KindValue:
		if n == nil || n.Kind != node.KindSeq {
			return nil
		}
		var out []candidate
		for i, item := range n.Items {
			if s, ok := item.AsString(); ok && s == tok.Key {
				out = append(out, candidate{path: join(c.path, strconv.Itoa(i)), node: item})
			}
		}
		return out
	}
	return nil
}

func rangeLabel(hi int) string {
	if hi == MaxRange {
		return "MAX"
	}
	return strconv.Itoa(hi)
}

func join(prefix, next string) string {
	if prefix == "" {
		return next
	}
	return strings.Join([]string{prefix, next}, "::")
}
