package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveImportValue implements !ImportValue (spec.md §4.C). Its argument
// (an export name, itself possibly an intrinsic) is resolved, then looked
// up against every loaded import document whose recorded export key
// matches; otherwise the tag is left in place.
func resolveImportValue(rc *ResolveContext, tagged *node.Node) *node.Node {
	name, ok := stringify(ResolveDeep(rc, untag(tagged)))
	if !ok {
		return tagged
	}
	for _, iv := range rc.Input.ImportValues {
		if iv.Key == name {
			return iv.Document
		}
	}
	return tagged
}
