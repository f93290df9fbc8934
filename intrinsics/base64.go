package intrinsics

import (
	"encoding/base64"

	"github.com/lex00/cfn-render-go/node"
)

// resolveBase64 implements !Base64 (spec.md §4.C): the argument resolves
// recursively to a string, which is then Base64-encoded with the standard
// alphabet over its UTF-8 bytes.
func resolveBase64(rc *ResolveContext, tagged *node.Node) *node.Node {
	resolved := ResolveDeep(rc, untag(tagged))
	s, ok := stringify(resolved)
	if !ok {
		return tagged
	}
	return node.NewScalar(base64.StdEncoding.EncodeToString([]byte(s)))
}
