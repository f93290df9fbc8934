// Package walk implements the single traversal driver that descends a
// decoded template tree and asks package intrinsics to resolve every tagged
// node it finds (spec.md §4.D). Resolvers never drive their own traversal
// of the tree at large; they only recurse into their own argument subtree
// (intrinsics.ResolveDeep). The walker is the one place tree mutation during
// iteration happens, done with an explicit stack instead of recursion so a
// resolver rewriting a node mid-walk never corrupts a Go call stack's view
// of the tree it's iterating.
package walk

import (
	"fmt"

	"github.com/lex00/cfn-render-go/intrinsics"
	"github.com/lex00/cfn-render-go/node"
)

// DefaultMaxVisits bounds how many nodes a single walk will visit before it
// gives up, guarding against a circular reference a resolver override could
// otherwise turn into an unbounded loop (spec.md §4.D, §9).
const DefaultMaxVisits = 10000

// ErrTooManyVisits is returned when a walk exceeds its node-visit budget.
type ErrTooManyVisits struct {
	Limit int
}

func (e *ErrTooManyVisits) Error() string {
	return fmt.Sprintf("walk: exceeded %d node visits, aborting (possible circular reference)", e.Limit)
}

// setter writes a resolved replacement back into the parent container that
// held the node being visited.
type setter func(*node.Node)

type frame struct {
	n   *node.Node
	set setter
}

// Walker drives one resolution pass over a tree.
type Walker struct {
	MaxVisits int
}

// New returns a Walker with the default visit budget.
func New() *Walker {
	return &Walker{MaxVisits: DefaultMaxVisits}
}

// Walk resolves every intrinsic reachable from root, rewriting the tree in
// place, and returns the (possibly replaced) root node.
func (w *Walker) Walk(rc *intrinsics.ResolveContext, root *node.Node) (*node.Node, error) {
	limit := w.MaxVisits
	if limit <= 0 {
		limit = DefaultMaxVisits
	}

	result := root
	stack := []frame{{n: root, set: func(n *node.Node) { result = n }}}
	visits := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visits++
		if visits > limit {
			return result, &ErrTooManyVisits{Limit: limit}
		}

		n := f.n
		if n == nil {
			continue
		}

		if n.IsTagged() {
			resolved := intrinsics.Resolve(rc, n)
			if resolved != n {
				f.set(resolved)
				stack = append(stack, frame{n: resolved, set: f.set})
				continue
			}
			// Left unchanged (unresolvable or unrecognized): nothing more
			// to dispatch on this node, but its own argument subtree may
			// still hold tags that a future pass (or nested resolver call)
			// could reach; descend structurally instead of re-dispatching.
		}

		switch n.Kind {
		case node.KindMap:
			for i := range n.Entries {
				idx := i
				stack = append(stack, frame{
					n: n.Entries[idx].Value,
					set: func(v *node.Node) {
						n.Entries[idx].Value = v
					},
				})
			}
		case node.KindSeq:
			for i := range n.Items {
				idx := i
				stack = append(stack, frame{
					n: n.Items[idx],
					set: func(v *node.Node) {
						n.Items[idx] = v
					},
				})
			}
		}
	}

	return result, nil
}
