// Package node provides the tagged tree representation CloudFormation
// templates are rendered through: maps, sequences, scalars and
// tagged-scalars, each able to carry a CFN intrinsic tag and enough of the
// original YAML formatting to round-trip.
package node

import "gopkg.in/yaml.v3"

// Kind identifies which of the four Node variants a value holds.
type Kind int

const (
	KindScalar Kind = iota
	KindTaggedScalar
	KindMap
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindTaggedScalar:
		return "TaggedScalar"
	case KindMap:
		return "Map"
	case KindSeq:
		return "Seq"
	default:
		return "Unknown"
	}
}

// Entry is one key/value pair of a Map, kept in insertion order.
type Entry struct {
	Key   string
	Value *Node
}

// Node is the sum-typed tree value described in spec.md §3. A Map or Seq
// may itself carry a Tag, in which case its Entries or Items are the
// intrinsic's arguments. A Scalar carries no tag; a TaggedScalar is a primitive
// carrying a single CFN tag (e.g. !Ref, !Condition, !ImportValue).
//
// Style, Tag and the comment fields mirror gopkg.in/yaml.v3's yaml.Node so that ToYAML can
// reproduce quoting and comments on round-trip.
type Node struct {
	Kind Kind

	// Scalar / TaggedScalar
	Value string
	Style yaml.Style

	// TaggedScalar / tagged Map / tagged Seq
	Tag string

	// Map
	Entries []Entry

	// Seq
	Items []*Node

	// Comments carried through from the source document, preserved
	// verbatim on re-encode.
	HeadComment string
	LineComment string
	FootComment string
}

// NewScalar builds an untagged scalar node.
func NewScalar(v string) *Node {
	return &Node{Kind: KindScalar, Value: v}
}

// NewTaggedScalar builds a tagged-scalar node, e.g. !Ref Env.
func NewTaggedScalar(tag, v string) *Node {
	return &Node{Kind: KindTaggedScalar, Tag: tag, Value: v}
}

// NewMap builds an empty, untagged map node.
func NewMap() *Node {
	return &Node{Kind: KindMap}
}

// NewSeq builds an empty, untagged sequence node.
func NewSeq() *Node {
	return &Node{Kind: KindSeq}
}

// IsTagged reports whether n carries a CFN intrinsic tag, regardless of
// whether it's a scalar, map or sequence underneath.
func (n *Node) IsTagged() bool {
	return n != nil && n.Tag != ""
}

// IsContainer reports whether n is a Map or a Seq.
func (n *Node) IsContainer() bool {
	return n != nil && (n.Kind == KindMap || n.Kind == KindSeq)
}

// AsString returns n's scalar value if n is a Scalar or TaggedScalar.
func (n *Node) AsString() (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind == KindScalar || n.Kind == KindTaggedScalar {
		return n.Value, true
	}
	return "", false
}

// Get looks up key in a Map node, preserving insertion order on the
// Entries slice. Returns nil, false if n isn't a Map or key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMap {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for key if present, or appends a new entry,
// preserving the order of existing keys (spec.md §3 order-preservation
// invariant).
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.Kind != KindMap {
		return
	}
	for i, e := range n.Entries {
		if e.Key == key {
			n.Entries[i].Value = value
			return
		}
	}
	n.Entries = append(n.Entries, Entry{Key: key, Value: value})
}

// Index returns the i'th element of a Seq node.
func (n *Node) Index(i int) (*Node, bool) {
	if n == nil || n.Kind != KindSeq || i < 0 || i >= len(n.Items) {
		return nil, false
	}
	return n.Items[i], true
}

// SetIndex replaces the i'th element of a Seq node in place.
func (n *Node) SetIndex(i int, value *Node) {
	if n == nil || n.Kind != KindSeq || i < 0 || i >= len(n.Items) {
		return
	}
	n.Items[i] = value
}

// Len returns the number of entries/items in a Map or Seq, 0 otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindMap:
		return len(n.Entries)
	case KindSeq:
		return len(n.Items)
	}
	return 0
}

// Keys returns a Map's keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMap {
		return nil
	}
	keys := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		keys[i] = e.Key
	}
	return keys
}
