package renderctx_test

import (
	"testing"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/renderctx"
	"gopkg.in/yaml.v3"
)

func parseDoc(t *testing.T, src string) *node.Node {
	t.Helper()
	var raw yaml.Node
	if err := yaml.Unmarshal([]byte(src), &raw); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	n, err := node.FromYAML(&raw)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	return n
}

func TestParseKV_FirstEqualsOnly(t *testing.T) {
	got := renderctx.ParseKV([]string{"a=b=c", "=ignored", "", "d=e"})
	if got["a"] != "b=c" {
		t.Errorf("a = %q, want b=c", got["a"])
	}
	if _, ok := got[""]; ok {
		t.Error("empty key should be discarded")
	}
	if got["d"] != "e" {
		t.Errorf("d = %q, want e", got["d"])
	}
}

func TestNew_SeedsParameterDefaults(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Env:\n    Default: prod\n  NoDefault:\n    Type: String\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if ctx.ParameterDefaults["Env"] != "prod" {
		t.Errorf("Env default = %q", ctx.ParameterDefaults["Env"])
	}
	if _, ok := ctx.ParameterDefaults["NoDefault"]; ok {
		t.Error("NoDefault should have no default")
	}
}

func TestNew_OverridesLayerOnTop(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Env:\n    Default: prod\n")
	ctx, err := renderctx.New(doc, renderctx.Options{Parameters: []string{"Env=stage"}})
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Parameters["Env"] != "stage" {
		t.Errorf("Parameters[Env] = %q", ctx.Parameters["Env"])
	}
	if ctx.ParameterDefaults["Env"] != "prod" {
		t.Errorf("ParameterDefaults[Env] = %q", ctx.ParameterDefaults["Env"])
	}
}
