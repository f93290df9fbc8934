package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/render"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/validate"
)

var (
	flagFilePattern      string
	flagRulesModule      string
	flagValidateFlags    []string
	flagValidateLogLevel string
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Render and validate one or more templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagValidateLogLevel)
		if err != nil {
			return newInputError("%v", err)
		}
		defer logger.Sync() //nolint:errcheck

		paths, err := findTemplates(args[0], flagFilePattern)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return newInputError("no matching files found at %s", args[0])
		}

		rules, err := loadRules(flagRulesModule)
		if err != nil {
			return newInputError("%v", err)
		}
		rules = rules.Enabled(flagValidateFlags)
		adapter := &validate.Adapter{Rules: rules}

		var failures error
		r := render.New()
		for _, path := range paths {
			src, err := afero.ReadFile(fs, path)
			if err != nil {
				return newInputError("template at %s does not exist", path)
			}
			rendered, err := r.Render(src, renderctx.Options{})
			if err != nil {
				return err
			}
			doc, err := node.Parse(rendered)
			if err != nil {
				return err
			}
			if err := adapter.Validate(path, doc); err != nil {
				failures = combineErrors(failures, err)
			}
		}

		if failures != nil {
			return &ValidationFailure{err: failures}
		}

		logger.Info(fmt.Sprintf("%d validations met for %d templates", len(rules), len(paths)), zap.Int("templates", len(paths)))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&flagFilePattern, "file-pattern", "", "glob pattern used to find template files")
	validateCmd.Flags().StringVar(&flagRulesModule, "rules", "", "path to a declarative rule file")
	validateCmd.Flags().StringArrayVarP(&flagValidateFlags, "flags", "F", nil, "rule names to disable")
	validateCmd.Flags().StringVar(&flagValidateLogLevel, "log-level", "info", "log level")
}

func findTemplates(path, pattern string) ([]string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, newInputError("template at %s does not exist", path)
	}
	if !info.IsDir() || pattern == "" {
		return []string{path}, nil
	}

	matches, err := afero.Glob(fs, filepath.Join(path, pattern))
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func combineErrors(a, b error) error {
	return multierr.Append(a, b)
}
