package main

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/validate"
)

func checkNotEmpty(path string, value *node.Node) error {
	if value == nil || value.Kind != node.KindMap || len(value.Entries) == 0 {
		return fmt.Errorf("%s is empty", path)
	}
	return nil
}

func checkIsString(path string, value *node.Node) error {
	if value == nil {
		return fmt.Errorf("%s is not defined", path)
	}
	if _, ok := value.AsString(); !ok {
		return fmt.Errorf("%s is not a string", path)
	}
	return nil
}

// defaultRules mirrors the built-in "Resources is not empty" /
// "Resources::*::Type is correctly defined" checks from the reference rule
// Collection (original_source/example/rules.py), used when --rules is
// omitted.
func defaultRules() validate.RuleSet {
	return validate.RuleSet{
		{
			Name:        "ResourcesNotEmpty",
			Selector:    "Resources",
			Description: "Resources is not empty",
			Required:    true,
			Check:       checkNotEmpty,
		},
		{
			Name:        "ResourceTypeDefined",
			Selector:    "Resources::*::Type",
			Description: "Resources::*::Type is correctly defined",
			Check:       checkIsString,
		},
	}
}

func loadRules(path string) (validate.RuleSet, error) {
	if path == "" {
		return defaultRules(), nil
	}
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return validate.LoadFile(src)
}
