package intrinsics

import "github.com/lex00/cfn-render-go/node"

// resolveGetAZs implements !GetAZs (spec.md §4.C): resolved against the
// context's availability_zones override list when one is supplied;
// otherwise the tag is left in place (the renderer never contacts AWS to
// discover real AZs, per spec.md §1's Non-goals).
func resolveGetAZs(rc *ResolveContext, tagged *node.Node) *node.Node {
	if len(rc.Input.AvailabilityZones) == 0 {
		return tagged
	}
	items := make([]*node.Node, len(rc.Input.AvailabilityZones))
	for i, az := range rc.Input.AvailabilityZones {
		items[i] = node.NewScalar(az)
	}
	return &node.Node{Kind: node.KindSeq, Items: items}
}
