package intrinsics

import (
	"regexp"

	"github.com/lex00/cfn-render-go/node"
)

var subVarPattern = regexp.MustCompile(`\$\{([\w:]+)\}`)

// resolveSub implements !Sub (spec.md §4.C). The argument is either a bare
// template string, or a 2-element sequence [template_string, variables].
// Placeholders are substituted first from the explicit variables map (2-
// element form only), then from references and parameter defaults; any
// placeholder left over stays literal in the output.
func resolveSub(rc *ResolveContext, tagged *node.Node) *node.Node {
	var tmpl string
	vars := map[string]string{}

	switch tagged.Kind {
	case node.KindTaggedScalar:
		tmpl = tagged.Value

	case node.KindSeq:
		if len(tagged.Items) != 2 {
			return tagged
		}
		s, ok := tagged.Items[0].AsString()
		if !ok {
			return tagged
		}
		tmpl = s

		varsNode := tagged.Items[1]
		if varsNode.Kind != node.KindMap {
			return tagged
		}
		for _, e := range varsNode.Entries {
			resolved := ResolveDeep(rc, e.Value)
			if str, ok := stringify(resolved); ok {
				vars[e.Key] = str
			}
		}

	default:
		return tagged
	}

	out := subVarPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := subVarPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		if v, ok := rc.Input.References[name]; ok {
			return v
		}
		if v, ok := rc.Input.ParameterDefaults[name]; ok {
			return v
		}
		return match
	})

	return node.NewScalar(out)
}
