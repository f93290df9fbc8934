package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/render"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/tags"
)

var fs afero.Fs = afero.NewOsFs()

var (
	flagOutputFile         string
	flagRenderParameters   []string
	flagRenderReferences   []string
	flagRenderMappings     []string
	flagRenderAttributes   []string
	flagRenderAZs          []string
	flagRenderImportValues []string
	flagRenderTags         []string
	flagRenderLogLevel     string
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render one template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagRenderLogLevel)
		if err != nil {
			return newInputError("%v", err)
		}
		defer logger.Sync() //nolint:errcheck

		path := args[0]
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return newInputError("template at %s does not exist", path)
		}

		loader := func(importPath string) (*node.Node, error) {
			return loadDocument(importPath)
		}

		r := render.New()
		if len(flagRenderTags) > 0 {
			r.Registry = tags.New(flagRenderTags...)
		}
		out, err := r.Render(src, renderctx.Options{
			Parameters:        flagRenderParameters,
			References:        flagRenderReferences,
			Mappings:          flagRenderMappings,
			Attributes:        flagRenderAttributes,
			AvailabilityZones: flagRenderAZs,
			ImportValues:      flagRenderImportValues,
			ImportValueLoader: loader,
		})
		if err != nil {
			return err
		}

		// When --output-file is omitted, rendered output goes to standard
		// output; only an explicit flag value writes to disk.
		if cmd.Flags().Changed("output-file") {
			if err := afero.WriteFile(fs, flagOutputFile, out, 0o644); err != nil {
				return err
			}
			logger.Info("template rendered", zap.String("path", flagOutputFile))
			return nil
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagOutputFile, "output-file", "rendered.yml", "path to write the rendered template to")
	renderCmd.Flags().StringArrayVar(&flagRenderParameters, "parameters", nil, "key=value overrides for Ref against Parameters")
	renderCmd.Flags().StringArrayVar(&flagRenderReferences, "references", nil, "key=value overrides for Ref")
	renderCmd.Flags().StringArrayVar(&flagRenderMappings, "mappings", nil, "key=value selections for FindInMap")
	renderCmd.Flags().StringArrayVar(&flagRenderAttributes, "attributes", nil, "key=value overrides for GetAtt")
	renderCmd.Flags().StringArrayVarP(&flagRenderAZs, "availability-zones", "z", nil, "availability zones for GetAZs")
	renderCmd.Flags().StringArrayVar(&flagRenderImportValues, "import-values", nil, "file=export-key pairs for ImportValue")
	renderCmd.Flags().StringArrayVar(&flagRenderTags, "tags", nil, "recognized intrinsic tag names (default: the full built-in set)")
	renderCmd.Flags().StringVar(&flagRenderLogLevel, "log-level", "info", "log level")
}

func loadDocument(path string) (*node.Node, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, newInputError("import value template at %s does not exist", path)
	}
	return node.Parse(src)
}
