package intrinsics

import (
	"strconv"
	"strings"

	"github.com/lex00/cfn-render-go/node"
)

// resolveGetAtt implements !GetAtt (spec.md §4.C). The argument is either
// a dotted "Logical.Attr[.Sub...]" string or a sequence of step strings.
// An override keyed by the joined dotted form wins outright; otherwise
// the resolver walks into Resources step by step, string steps indexing
// maps and numeric steps indexing sequences, with a step literally named
// "Value" terminating the walk early.
func resolveGetAtt(rc *ResolveContext, tagged *node.Node) *node.Node {
	steps, ok := getAttSteps(tagged)
	if !ok {
		return tagged
	}

	if v, ok := rc.Input.Attributes[strings.Join(steps, ".")]; ok {
		return v
	}

	if len(steps) == 0 {
		return tagged
	}
	cur, ok := rc.Input.Resources[steps[0]]
	if !ok {
		return tagged
	}

	for _, step := range steps[1:] {
		if step == "Value" {
			return cur
		}
		if idx, err := strconv.Atoi(step); err == nil {
			next, ok := cur.Index(idx)
			if !ok {
				return tagged
			}
			cur = next
			continue
		}
		next, ok := cur.Get(step)
		if !ok {
			return tagged
		}
		cur = next
	}

	return cur
}

func getAttSteps(tagged *node.Node) ([]string, bool) {
	switch tagged.Kind {
	case node.KindTaggedScalar:
		parts := strings.Split(tagged.Value, ".")
		return parts, true

	case node.KindSeq:
		steps := make([]string, 0, len(tagged.Items))
		for _, item := range tagged.Items {
			s, ok := item.AsString()
			if !ok {
				return nil, false
			}
			steps = append(steps, s)
		}
		if len(steps) == 0 {
			return nil, false
		}
		return steps, true
	}
	return nil, false
}
