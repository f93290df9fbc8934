// Package render wires the decode -> context -> walk -> encode pipeline
// into a single entry point, the shape a caller (the cmd/cfn-render CLI,
// or a test) actually wants: bytes in, bytes out, structure and order
// preserved (spec.md §3, §4).
package render

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/lex00/cfn-render-go/intrinsics"
	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/tags"
	"github.com/lex00/cfn-render-go/walk"
)

// Indent is the mapping/sequence indent width used on re-encode. yaml.v3's
// Encoder only exposes a single indent knob, not the original renderer's
// independent mapping/sequence/offset controls (see DESIGN.md); 2 matches
// the common default and keeps re-encoded output close to typical input.
const Indent = 2

// Renderer resolves one template's intrinsics against a set of inputs.
type Renderer struct {
	MaxVisits int
	Registry  *tags.Registry
}

// New returns a Renderer using the default tag registry and visit budget.
func New() *Renderer {
	return &Renderer{Registry: tags.Default()}
}

// Render decodes src, resolves every recognized intrinsic against opts, and
// re-encodes the result, preserving key order and comments that survive the
// yaml.v3 round trip.
func (r *Renderer) Render(src []byte, opts renderctx.Options) ([]byte, error) {
	var raw yaml.Node
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, err
	}

	doc, err := node.FromYAML(&raw)
	if err != nil {
		return nil, err
	}

	ctx, err := renderctx.New(doc, opts)
	if err != nil {
		return nil, err
	}

	registry := r.Registry
	if registry == nil {
		registry = tags.Default()
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: registry}

	w := &walk.Walker{MaxVisits: r.MaxVisits}
	resolved, err := w.Walk(rc, doc)
	if err != nil {
		// ErrTooManyVisits is a safety rail, not a contract: the walker
		// still halts and hands back its partial result (spec.md §4.D),
		// so a self-referential document completes a render rather than
		// failing it outright (spec.md §8 invariant 6).
		if _, ok := err.(*walk.ErrTooManyVisits); !ok {
			return nil, err
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(node.ToYAML(resolved)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
