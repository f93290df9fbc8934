package validate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lex00/cfn-render-go/node"
)

// spec is the declarative, data-driven stand-in for the original system's
// decorator-discovered rule Collections (original_source/example/rules.py):
// Go has no equivalent to introspecting a module for decorated methods at
// runtime, so a rule module here is a plain YAML document naming a selector,
// a description, and one of a small fixed set of checks.
type spec struct {
	Name        string `yaml:"name"`
	Selector    string `yaml:"selector"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Check       string `yaml:"check"`
}

// LoadFile parses a YAML rule module (a list of rule specs) into a RuleSet.
func LoadFile(src []byte) (RuleSet, error) {
	var specs []spec
	if err := yaml.Unmarshal(src, &specs); err != nil {
		return nil, fmt.Errorf("validate: malformed rule module: %w", err)
	}

	rules := make(RuleSet, 0, len(specs))
	for _, s := range specs {
		check, ok := checks[s.Check]
		if !ok {
			return nil, fmt.Errorf("validate: unknown check %q for rule %q", s.Check, s.Name)
		}
		rules = append(rules, Rule{
			Name:        s.Name,
			Selector:    s.Selector,
			Description: s.Description,
			Required:    s.Required,
			Check:       check,
		})
	}
	return rules, nil
}

// checks is the closed set of built-in checks a declarative rule module may
// reference by name, mirroring the small, fixed vocabulary of assertions the
// original example rule Collections actually used (not-empty, defined,
// string-typed, list-typed).
var checks = map[string]CheckFunc{
	"not_empty": func(path string, value *node.Node) error {
		if value == nil {
			return fmt.Errorf("%s is not defined", path)
		}
		switch value.Kind {
		case node.KindMap:
			if len(value.Entries) == 0 {
				return fmt.Errorf("%s is empty", path)
			}
		case node.KindSeq:
			if len(value.Items) == 0 {
				return fmt.Errorf("%s is empty", path)
			}
		}
		return nil
	},
	"defined": func(path string, value *node.Node) error {
		if value == nil {
			return fmt.Errorf("%s is not defined", path)
		}
		return nil
	},
	"is_string": func(path string, value *node.Node) error {
		if value == nil {
			return fmt.Errorf("%s is not defined", path)
		}
		if _, ok := value.AsString(); !ok {
			return fmt.Errorf("%s is not a string", path)
		}
		return nil
	},
	"is_list": func(path string, value *node.Node) error {
		if value == nil || value.Kind != node.KindSeq {
			return fmt.Errorf("%s is not a list", path)
		}
		return nil
	},
	"is_list_non_empty": func(path string, value *node.Node) error {
		if value == nil || value.Kind != node.KindSeq {
			return fmt.Errorf("%s is not a list", path)
		}
		if len(value.Items) == 0 {
			return fmt.Errorf("%s is empty", path)
		}
		return nil
	},
}
