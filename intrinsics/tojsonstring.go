package intrinsics

import (
	"bytes"
	"encoding/json"

	"github.com/lex00/cfn-render-go/node"
	"gopkg.in/yaml.v3"
)

// resolveToJSONString implements !ToJsonString (spec.md §4.C): the
// argument's contents are resolved recursively first, then serialized to
// a canonical JSON string that preserves map insertion order.
func resolveToJSONString(rc *ResolveContext, tagged *node.Node) *node.Node {
	resolved := ResolveDeep(rc, untag(tagged))
	data, ok := toJSONValue(resolved)
	if !ok {
		return tagged
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return tagged
	}

	return node.NewScalar(string(bytes.TrimRight(buf.Bytes(), "\n")))
}

// toJSONValue is a thin ordered-JSON emitter: Go's encoding/json sorts map
// keys, which would violate the order-preservation invariant (spec.md §8),
// so maps and sequences are assembled by hand into raw JSON via
// json.RawMessage while scalars and map keys defer to the standard marshaler.
func toJSONValue(n *node.Node) (json.RawMessage, bool) {
	if n == nil {
		return json.RawMessage("null"), true
	}

	switch n.Kind {
	case node.KindScalar, node.KindTaggedScalar:
		data, err := json.Marshal(scalarAny(n))
		if err != nil {
			return nil, false
		}
		return data, true

	case node.KindSeq:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			v, ok := toJSONValue(item)
			if !ok {
				return nil, false
			}
			buf.Write(v)
		}
		buf.WriteByte(']')
		return buf.Bytes(), true

	case node.KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, false
			}
			buf.Write(key)
			buf.WriteByte(':')
			v, ok := toJSONValue(e.Value)
			if !ok {
				return nil, false
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), true
	}

	return nil, false
}

// scalarAny interprets a YAML scalar's string form as the closest JSON
// primitive, matching YAML 1.1's core schema: "true"/"false" are bool,
// "null"/"~"/"" are null, otherwise numbers decode as JSON number where
// possible and everything else stays a string. A scalar whose original
// style was an explicit quote is always a string, regardless of content.
func scalarAny(n *node.Node) any {
	if n.Style == yaml.DoubleQuotedStyle || n.Style == yaml.SingleQuotedStyle {
		return n.Value
	}
	v := n.Value
	switch v {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	case "null", "Null", "NULL", "~", "":
		return nil
	}
	var f float64
	if err := json.Unmarshal([]byte(v), &f); err == nil {
		return json.RawMessage(v)
	}
	return v
}
