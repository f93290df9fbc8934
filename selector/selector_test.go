package selector_test

import (
	"testing"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/selector"
	"gopkg.in/yaml.v3"
)

func mustParseDoc(t *testing.T, src string) *node.Node {
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

func values(matches []selector.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		s, _ := m.Value.AsString()
		out[i] = s
	}
	return out
}

func TestWildcardKeySelector(t *testing.T) {
	doc := mustParseDoc(t, "Resources:\n  A:\n    Type: T1\n  B:\n    Type: T2\n")
	matches, err := selector.FindString(doc, "Resources::*::Type")
	if err != nil {
		t.Fatal(err)
	}
	got := values(matches)
	if len(got) != 2 || got[0] != "T1" || got[1] != "T2" {
		t.Fatalf("got %v", got)
	}
}

func TestUnboundRangeYieldsFullListOnce(t *testing.T) {
	doc := mustParseDoc(t, "Resources:\n  LambdaExecutionRole:\n    Properties:\n      Policies:\n        - a\n        - b\n")
	matches, err := selector.FindString(doc, "Resources::LambdaExecutionRole::Properties::Policies::[]")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Value.Kind != node.KindSeq || len(matches[0].Value.Items) != 2 {
		t.Fatalf("expected full 2-element seq, got %+v", matches[0].Value)
	}
}

func TestBoundRange(t *testing.T) {
	doc := mustParseDoc(t, "Resources:\n  Foo:\n    Props:\n      - a\n      - b\n      - c\n      - d\n")
	matches, err := selector.FindString(doc, "Resources::Foo::Props::[0-2]")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || len(matches[0].Value.Items) != 2 {
		t.Fatalf("got %+v", matches)
	}
}

func TestWildcardRange(t *testing.T) {
	doc := mustParseDoc(t, "Resources:\n  Foo:\n    Props:\n      - a\n      - b\n      - c\n")
	matches, err := selector.FindString(doc, "Resources::Foo::Props::[*]")
	if err != nil {
		t.Fatal(err)
	}
	got := values(matches)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestPatternKeySelector(t *testing.T) {
	doc := mustParseDoc(t, "AWS::S3::Bucket: bucket\nOther: other\n")
	matches, err := selector.FindString(doc, "(^AWS::)")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
}

func TestPatternSegmentContainingDoubleColonNotShredded(t *testing.T) {
	doc := mustParseDoc(t, "Resources:\n  AWS::S3::Bucket:\n    Type: T1\n  Other:\n    Type: T2\n")
	matches, err := selector.FindString(doc, "Resources::(^AWS::)::Type")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	s, _ := matches[0].Value.AsString()
	if s != "T1" {
		t.Fatalf("got %v", s)
	}
}

func TestTotality_NoMatchTerminates(t *testing.T) {
	doc := mustParseDoc(t, "Resources: {}\n")
	matches, err := selector.FindString(doc, "Resources::Missing::[5-10]::*")
	if err != nil {
		t.Fatal(err)
	}
	if matches != nil {
		t.Fatalf("expected no matches, got %+v", matches)
	}
}

func TestParse_UnbalancedPattern(t *testing.T) {
	_, err := selector.Parse("(^AWS::")
	if err == nil {
		t.Fatal("expected error for unbalanced pattern group, got nil")
	}
}
