package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveRef implements !Ref (spec.md §4.C): the argument is a plain
// string scalar naming a parameter, resource, or other override, resolved
// through a fixed priority chain, first hit wins.
func resolveRef(rc *ResolveContext, tagged *node.Node) *node.Node {
	name, ok := tagged.AsString()
	if !ok {
		return tagged
	}

	if v, ok := rc.Input.Parameters[name]; ok {
		return node.NewScalar(v)
	}
	if v, ok := rc.Input.ParameterDefaults[name]; ok {
		return node.NewScalar(v)
	}
	if rc.Input.TemplateParameters[name] {
		// Declared parameter, no override or default: stays symbolic.
		return tagged
	}
	if _, ok := rc.Input.Resources[name]; ok {
		// A resource's logical ID is its own reference.
		return node.NewScalar(name)
	}
	if v, ok := rc.Input.References[name]; ok {
		return node.NewScalar(v)
	}

	if v, ok := findFirstMapEntry(rc.Root, name); ok {
		return v
	}

	return tagged
}

// findFirstMapEntry searches root for the first Map entry whose key equals
// name, returning its value (spec.md §4.C step 6). Each map's own keys are
// checked before the search descends into its values.
func findFirstMapEntry(root *node.Node, name string) (*node.Node, bool) {
	if root == nil {
		return nil, false
	}
	switch root.Kind {
	case node.KindMap:
		for _, e := range root.Entries {
			if e.Key == name {
				return e.Value, true
			}
		}
		for _, e := range root.Entries {
			if v, ok := findFirstMapEntry(e.Value, name); ok {
				return v, true
			}
		}
	case node.KindSeq:
		for _, item := range root.Items {
			if v, ok := findFirstMapEntry(item, name); ok {
				return v, true
			}
		}
	}
	return nil, false
}
