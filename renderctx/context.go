// Package renderctx builds and holds the immutable input context a render
// pass resolves intrinsics against (spec.md §3, §4.E).
package renderctx

import "github.com/lex00/cfn-render-go/node"

// ImportValue pairs the export key a caller asked for with the document
// loaded from the file that supplies it (spec.md §3 import_values).
type ImportValue struct {
	Key      string
	Document *node.Node
}

// Context is constructed once per render and never mutated afterward; the
// walker and resolvers only ever read from it (spec.md §3, §5).
type Context struct {
	Parameters        map[string]string
	ParameterDefaults map[string]string
	References        map[string]string
	Attributes        map[string]*node.Node
	Mappings          map[string]*node.Node
	SelectedMappings  map[string]string
	Conditions        map[string]*node.Node
	Resources         map[string]*node.Node
	AvailabilityZones []string
	ImportValues      map[string]ImportValue

	// TemplateParameters is the set of logical names declared in the
	// template's own Parameters block, independent of whether each one
	// has a Default. !Ref resolution (spec.md §4.C step 3) needs this to
	// tell "parameter with no override and no default" apart from
	// "name doesn't exist anywhere in the template".
	TemplateParameters map[string]bool
}

// Options carries the raw "key=value" flag lists and scalar overrides the
// CLI (or any other caller) supplies for one render (spec.md §6).
type Options struct {
	Parameters        []string
	References        []string
	Attributes        []string
	Mappings          []string
	AvailabilityZones []string
	ImportValues      []string
	ImportValueLoader func(path string) (*node.Node, error)
}

// New builds a Context for one render: it seeds ParameterDefaults from the
// template's own Parameters block, then layers the caller's overrides on
// top (spec.md §4.E steps 1-4).
func New(doc *node.Node, opts Options) (*Context, error) {
	ctx := &Context{
		Parameters:        ParseKV(opts.Parameters),
		ParameterDefaults: map[string]string{},
		References:        ParseKV(opts.References),
		Attributes:        map[string]*node.Node{},
		Mappings:          map[string]*node.Node{},
		SelectedMappings:  ParseKV(opts.Mappings),
		Conditions:        map[string]*node.Node{},
		Resources:         map[string]*node.Node{},
		AvailabilityZones:  opts.AvailabilityZones,
		ImportValues:       map[string]ImportValue{},
		TemplateParameters: map[string]bool{},
	}

	if params, ok := doc.Get("Parameters"); ok && params.Kind == node.KindMap {
		for _, e := range params.Entries {
			ctx.TemplateParameters[e.Key] = true
			if def, ok := e.Value.Get("Default"); ok {
				if s, ok := def.AsString(); ok {
					ctx.ParameterDefaults[e.Key] = s
				}
			}
		}
	}

	if mappings, ok := doc.Get("Mappings"); ok && mappings.Kind == node.KindMap {
		for _, e := range mappings.Entries {
			ctx.Mappings[e.Key] = e.Value
		}
	}

	if conditions, ok := doc.Get("Conditions"); ok && conditions.Kind == node.KindMap {
		for _, e := range conditions.Entries {
			ctx.Conditions[e.Key] = e.Value
		}
	}

	if resources, ok := doc.Get("Resources"); ok && resources.Kind == node.KindMap {
		for _, e := range resources.Entries {
			ctx.Resources[e.Key] = e.Value
		}
	}

	for key, value := range ParseKV(opts.Attributes) {
		ctx.Attributes[key] = node.NewScalar(value)
	}

	for filePath, exportKey := range ParseKV(opts.ImportValues) {
		if opts.ImportValueLoader == nil {
			continue
		}
		doc, err := opts.ImportValueLoader(filePath)
		if err != nil {
			return nil, err
		}
		ctx.ImportValues[filePath] = ImportValue{Key: exportKey, Document: doc}
	}

	return ctx, nil
}
