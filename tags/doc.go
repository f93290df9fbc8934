// Package tags provides the registry of recognized CloudFormation
// intrinsic tag names.
//
// This mirrors the teacher's enums package (a string-keyed registry of
// allowed values per domain, with lookup helpers) repurposed for a
// different domain: instead of mapping an AWS service+property to its
// allowed enum values, it maps the CLI's configurable `--tags` list to
// the set of tag names the resolvers and walker recognize.
//
//	reg := tags.Default()
//	reg.IsRecognized("Sub")       // true
//	reg = tags.New("Ref", "Sub")  // restrict to a user-supplied list
package tags
