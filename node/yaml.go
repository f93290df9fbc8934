package node

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes raw YAML bytes directly into a Node tree.
func Parse(src []byte) (*Node, error) {
	var raw yaml.Node
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, err
	}
	return FromYAML(&raw)
}

// FromYAML converts a decoded yaml.Node tree into a Node tree, recording
// each mapping/sequence/scalar's tag so intrinsic functions survive the
// conversion. Cycle detection mirrors the teacher's parseYAMLNodeWithVisited:
// an alias that points back into its own ancestry decodes to nil rather
// than recursing forever.
func FromYAML(n *yaml.Node) (*Node, error) {
	return fromYAML(n, make(map[*yaml.Node]bool))
}

func fromYAML(n *yaml.Node, visited map[*yaml.Node]bool) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return NewMap(), nil
		}
		return fromYAML(n.Content[0], visited)
	}
	if visited[n] {
		return nil, nil
	}
	visited[n] = true
	defer delete(visited, n)

	if n.Kind == yaml.AliasNode {
		return fromYAML(n.Alias, visited)
	}

	tag := cfnTag(n)

	switch n.Kind {
	case yaml.ScalarNode:
		out := &Node{Value: n.Value, Style: n.Style}
		if tag != "" {
			out.Kind = KindTaggedScalar
			out.Tag = tag
		} else {
			out.Kind = KindScalar
		}
		attachComments(out, n)
		return out, nil

	case yaml.SequenceNode:
		out := &Node{Kind: KindSeq, Tag: tag}
		for _, c := range n.Content {
			child, err := fromYAML(c, visited)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
		attachComments(out, n)
		return out, nil

	case yaml.MappingNode:
		out := &Node{Kind: KindMap, Tag: tag}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			val, err := fromYAML(valNode, visited)
			if err != nil {
				return nil, err
			}
			key := keyNode.Value
			for _, e := range out.Entries {
				if e.Key == key {
					return nil, fmt.Errorf("node: duplicate map key %q", key)
				}
			}
			out.Entries = append(out.Entries, Entry{Key: key, Value: val})
		}
		attachComments(out, n)
		return out, nil
	}

	return nil, fmt.Errorf("node: unsupported yaml.Node kind %v", n.Kind)
}

// cfnTag returns the CFN short-tag name (without the leading "!"), or ""
// for untagged nodes and YAML's own "!!str"/"!!map"/... core tags.
func cfnTag(n *yaml.Node) string {
	if n.Tag == "" {
		return ""
	}
	if strings.HasPrefix(n.Tag, "!!") {
		return ""
	}
	if strings.HasPrefix(n.Tag, "!") {
		return strings.TrimPrefix(n.Tag, "!")
	}
	return ""
}

func attachComments(out *Node, n *yaml.Node) {
	out.HeadComment = n.HeadComment
	out.LineComment = n.LineComment
	out.FootComment = n.FootComment
}

// ToYAML converts a Node tree back into a yaml.Node tree suitable for
// encoding with yaml.Encoder, preserving tags, quoting style, key order
// and comments.
func ToYAML(n *Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	out := &yaml.Node{
		HeadComment: n.HeadComment,
		LineComment: n.LineComment,
		FootComment: n.FootComment,
	}

	switch n.Kind {
	case KindScalar:
		out.Kind = yaml.ScalarNode
		out.Value = n.Value
		out.Style = n.Style
		out.Tag = scalarTag(n.Value, n.Style)

	case KindTaggedScalar:
		out.Kind = yaml.ScalarNode
		out.Value = n.Value
		out.Style = n.Style
		out.Tag = "!" + n.Tag

	case KindSeq:
		out.Kind = yaml.SequenceNode
		if n.Tag != "" {
			out.Tag = "!" + n.Tag
		} else {
			out.Tag = "!!seq"
		}
		for _, item := range n.Items {
			out.Content = append(out.Content, ToYAML(item))
		}

	case KindMap:
		out.Kind = yaml.MappingNode
		if n.Tag != "" {
			out.Tag = "!" + n.Tag
		} else {
			out.Tag = "!!map"
		}
		for _, e := range n.Entries {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Key, Tag: "!!str"}
			out.Content = append(out.Content, keyNode, ToYAML(e.Value))
		}
	}

	return out
}

// scalarTag lets yaml.v3 infer the right core tag (!!str, !!int, !!bool,
// !!null, ...) for an untagged scalar, except when the original style was
// an explicit quote: quoted scalars are always strings.
func scalarTag(value string, style yaml.Style) string {
	if style == yaml.DoubleQuotedStyle || style == yaml.SingleQuotedStyle {
		return "!!str"
	}
	return ""
}
