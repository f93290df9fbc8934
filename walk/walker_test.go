package walk_test

import (
	"testing"

	"github.com/lex00/cfn-render-go/intrinsics"
	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/tags"
	"github.com/lex00/cfn-render-go/walk"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, src string) *node.Node {
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

func TestWalk_ResolvesNestedRef(t *testing.T) {
	doc := parse(t, "Parameters:\n  Env:\n    Default: prod\nResources:\n  Bucket:\n    Properties:\n      Name: !Ref Env\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.Default()}

	out, err := walk.New().Walk(rc, doc)
	if err != nil {
		t.Fatal(err)
	}

	res, _ := out.Get("Resources")
	bucket, _ := res.Get("Bucket")
	props, _ := bucket.Get("Properties")
	name, _ := props.Get("Name")
	s, _ := name.AsString()
	if s != "prod" {
		t.Fatalf("got %+v", name)
	}
}

func TestWalk_PassThroughWhenNoTags(t *testing.T) {
	doc := parse(t, "Resources:\n  Bucket:\n    Type: AWS::S3::Bucket\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.Default()}

	out, err := walk.New().Walk(rc, doc)
	if err != nil {
		t.Fatal(err)
	}
	res, _ := out.Get("Resources")
	bucket, _ := res.Get("Bucket")
	typ, _ := bucket.Get("Type")
	s, _ := typ.AsString()
	if s != "AWS::S3::Bucket" {
		t.Fatalf("got %+v", typ)
	}
}

func TestWalk_LeavesUnresolvableParameterSymbolic(t *testing.T) {
	doc := parse(t, "Parameters:\n  Env:\n    Type: String\nResources:\n  Bucket:\n    Properties:\n      Name: !Ref Env\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.Default()}

	out, err := walk.New().Walk(rc, doc)
	if err != nil {
		t.Fatal(err)
	}
	res, _ := out.Get("Resources")
	bucket, _ := res.Get("Bucket")
	props, _ := bucket.Get("Properties")
	name, _ := props.Get("Name")
	if name.Tag != "Ref" {
		t.Fatalf("expected tag still Ref, got %+v", name)
	}
}

func TestWalk_BoundedTraversalReturnsError(t *testing.T) {
	doc := parse(t, "A: b\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.Default()}

	w := &walk.Walker{MaxVisits: 1}
	nested := parse(t, "A:\n  B:\n    C: d\n")
	_, err = w.Walk(rc, nested)
	if err == nil {
		t.Fatalf("expected bounded-traversal error")
	}
	if _, ok := err.(*walk.ErrTooManyVisits); !ok {
		t.Fatalf("wrong error type: %T", err)
	}
}
