package intrinsics_test

import (
	"testing"

	"github.com/lex00/cfn-render-go/intrinsics"
	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/renderctx"
	"github.com/lex00/cfn-render-go/tags"
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

func newRC(t *testing.T, doc *node.Node, opts renderctx.Options) *intrinsics.ResolveContext {
	t.Helper()
	ctx, err := renderctx.New(doc, opts)
	if err != nil {
		t.Fatalf("renderctx.New: %v", err)
	}
	return &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.Default()}
}

func TestRef_ParameterDefault(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Env:\n    Default: prod\n")
	rc := newRC(t, doc, renderctx.Options{})
	tagged := node.NewTaggedScalar("Ref", "Env")
	got := intrinsics.Resolve(rc, tagged)
	if s, _ := got.AsString(); s != "prod" {
		t.Fatalf("got %+v", got)
	}
}

func TestRef_UnresolvedParameterStaysSymbolic(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Env:\n    Type: String\n")
	rc := newRC(t, doc, renderctx.Options{})
	tagged := node.NewTaggedScalar("Ref", "Env")
	got := intrinsics.Resolve(rc, tagged)
	if got != tagged {
		t.Fatalf("expected unchanged node, got %+v", got)
	}
}

func TestRef_ResourceLogicalID(t *testing.T) {
	doc := parseDoc(t, "Resources:\n  MyBucket:\n    Type: AWS::S3::Bucket\n")
	rc := newRC(t, doc, renderctx.Options{})
	got := intrinsics.Resolve(rc, node.NewTaggedScalar("Ref", "MyBucket"))
	if s, _ := got.AsString(); s != "MyBucket" {
		t.Fatalf("got %+v", got)
	}
}

func TestJoin_WithRef(t *testing.T) {
	doc := parseDoc(t, "Resources: {}\n")
	rc := newRC(t, doc, renderctx.Options{Parameters: []string{"Env=stage"}})
	join := &node.Node{Kind: node.KindSeq, Tag: "Join", Items: []*node.Node{
		node.NewScalar("-"),
		{Kind: node.KindSeq, Items: []*node.Node{
			node.NewTaggedScalar("Ref", "Env"),
			node.NewScalar("svc"),
		}},
	}}
	got := intrinsics.Resolve(rc, join)
	if s, _ := got.AsString(); s != "stage-svc" {
		t.Fatalf("got %+v", got)
	}
}

func TestJoin_UnresolvableRefStaysSymbolic(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Undefined:\n    Type: String\n")
	rc := newRC(t, doc, renderctx.Options{})
	join := &node.Node{Kind: node.KindSeq, Tag: "Join", Items: []*node.Node{
		node.NewScalar("-"),
		{Kind: node.KindSeq, Items: []*node.Node{
			node.NewTaggedScalar("Ref", "Undefined"),
			node.NewScalar("x"),
		}},
	}}
	got := intrinsics.Resolve(rc, join)
	if got != join {
		t.Fatalf("expected !Join to stay unresolved, got %+v", got)
	}
}

func TestFindInMap(t *testing.T) {
	doc := parseDoc(t, "Mappings:\n  Region:\n    us-east-1:\n      ami: ami-1\n    us-west-2:\n      ami: ami-2\n")
	rc := newRC(t, doc, renderctx.Options{Mappings: []string{"Region=us-east-1"}})
	fm := &node.Node{Kind: node.KindSeq, Tag: "FindInMap", Items: []*node.Node{
		node.NewScalar("Region"),
		node.NewScalar("us-east-1"),
		node.NewScalar("ami"),
	}}
	got := intrinsics.Resolve(rc, fm)
	if s, _ := got.AsString(); s != "ami-1" {
		t.Fatalf("got %+v", got)
	}
}

func TestSub_WithExplicitVars(t *testing.T) {
	doc := parseDoc(t, "Resources: {}\n")
	rc := newRC(t, doc, renderctx.Options{})
	sub := &node.Node{Kind: node.KindSeq, Tag: "Sub", Items: []*node.Node{
		node.NewScalar("${A}/${B}"),
		{Kind: node.KindMap, Entries: []node.Entry{
			{Key: "A", Value: node.NewScalar("alpha")},
			{Key: "B", Value: node.NewScalar("beta")},
		}},
	}}
	got := intrinsics.Resolve(rc, sub)
	if s, _ := got.AsString(); s != "alpha/beta" {
		t.Fatalf("got %+v", got)
	}
}

func TestGetAtt_Override(t *testing.T) {
	doc := parseDoc(t, "Resources: {}\n")
	rc := newRC(t, doc, renderctx.Options{Attributes: []string{"Role.Arn=arn:aws:iam::123:role/R"}})
	got := intrinsics.Resolve(rc, node.NewTaggedScalar("GetAtt", "Role.Arn"))
	if s, _ := got.AsString(); s != "arn:aws:iam::123:role/R" {
		t.Fatalf("got %+v", got)
	}
}

func TestIfEqualsConditionChain(t *testing.T) {
	doc := parseDoc(t, "Conditions:\n  IsProd: !Equals [!Ref Env, prod]\n")
	for env, want := range map[string]string{"prod": "a", "dev": "b"} {
		rc := newRC(t, doc, renderctx.Options{Parameters: []string{"Env=" + env}})
		ifNode := &node.Node{Kind: node.KindSeq, Tag: "If", Items: []*node.Node{
			node.NewScalar("IsProd"),
			node.NewScalar("a"),
			node.NewScalar("b"),
		}}
		got := intrinsics.Resolve(rc, ifNode)
		if s, _ := got.AsString(); s != want {
			t.Fatalf("env=%s: got %+v, want %s", env, got, want)
		}
	}
}

func TestResolver_Idempotent(t *testing.T) {
	doc := parseDoc(t, "Parameters:\n  Env:\n    Default: prod\n")
	rc := newRC(t, doc, renderctx.Options{})
	tagged := node.NewTaggedScalar("Ref", "Env")
	once := intrinsics.Resolve(rc, tagged)
	twice := intrinsics.Resolve(rc, once)
	if once.Value != twice.Value || once.Kind != twice.Kind {
		t.Fatalf("not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestUnrecognizedTagLeftUnchanged(t *testing.T) {
	doc := parseDoc(t, "Resources: {}\n")
	ctx, err := renderctx.New(doc, renderctx.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc := &intrinsics.ResolveContext{Root: doc, Input: ctx, Registry: tags.New("Ref")}
	tagged := node.NewTaggedScalar("Sub", "${Foo}")
	got := intrinsics.Resolve(rc, tagged)
	if got != tagged {
		t.Fatalf("expected unrecognized tag left unchanged, got %+v", got)
	}
}
