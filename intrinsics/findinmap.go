package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveFindInMap implements !FindInMap (spec.md §4.C, §8 scenario 3).
// The argument is a 3-element sequence [MapName, TopLevelKey, SecondKey];
// each element may itself be an intrinsic, resolved first. When the
// top-level key itself can't be resolved to a plain string (e.g. an
// unresolved !Ref AWS::Region), selected_mappings supplies the user's
// chosen key for that map instead.
func resolveFindInMap(rc *ResolveContext, tagged *node.Node) *node.Node {
	if tagged.Kind != node.KindSeq || len(tagged.Items) != 3 {
		return tagged
	}

	mapNameNode := ResolveDeep(rc, tagged.Items[0])
	mapName, ok := stringify(mapNameNode)
	if !ok {
		return tagged
	}

	topKeyNode := ResolveDeep(rc, tagged.Items[1])
	topKey, ok := stringify(topKeyNode)
	if !ok {
		if sel, ok := rc.Input.SelectedMappings[mapName]; ok {
			topKey = sel
		} else {
			return tagged
		}
	}

	secondKeyNode := ResolveDeep(rc, tagged.Items[2])
	secondKey, ok := stringify(secondKeyNode)
	if !ok {
		return tagged
	}

	mapping, ok := rc.Input.Mappings[mapName]
	if !ok || mapping.Kind != node.KindMap {
		return tagged
	}
	topLevel, ok := mapping.Get(topKey)
	if !ok || topLevel.Kind != node.KindMap {
		return tagged
	}
	value, ok := topLevel.Get(secondKey)
	if !ok {
		return tagged
	}
	return value
}
