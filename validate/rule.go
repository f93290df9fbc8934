// Package validate runs a set of named rules against a rendered (or raw)
// template tree, each rule scoped to a selector query (package selector)
// and reporting failures through a single aggregated error instead of
// stopping at the first one, mirroring the decorator-based rule Collections
// of the system this was adapted from (original_source/example/rules.py)
// recast as plain Go values since Go has no equivalent to registering a
// method via a decorator at import time.
package validate

import "github.com/lex00/cfn-render-go/node"

// CheckFunc inspects one selector match and returns a descriptive error if
// the match fails the rule, or nil if it passes.
type CheckFunc func(path string, value *node.Node) error

// Rule binds a selector query to a check. Required rules that match nothing
// still run their check once against a nil value, so a rule like "Resources
// must not be empty" fires even when the Resources block is absent entirely.
type Rule struct {
	Name        string
	Selector    string
	Description string
	Required    bool
	Check       CheckFunc
}
