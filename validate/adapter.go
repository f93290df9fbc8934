package validate

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/lex00/cfn-render-go/node"
	"github.com/lex00/cfn-render-go/selector"
)

// Failure describes one check that did not pass.
type Failure struct {
	Rule string
	Path string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Rule, f.Path, f.Err)
}

// Adapter runs a RuleSet against a document, selector-matching each rule's
// query and aggregating every failure (rather than stopping at the first)
// via multierr, so a single validate run reports everything wrong with a
// template in one pass.
type Adapter struct {
	Rules RuleSet
}

// Validate runs every rule in the adapter against doc and returns a single
// aggregated error (nil if every rule passed). filePath is carried only for
// failure messages; the adapter itself is stateless across documents.
func (a *Adapter) Validate(filePath string, doc *node.Node) error {
	var errs error

	for _, rule := range a.Rules {
		matches, err := selector.FindString(doc, rule.Selector)
		if err != nil {
			errs = multierr.Append(errs, &Failure{Rule: rule.Name, Path: filePath, Err: err})
			continue
		}

		if len(matches) == 0 {
			if rule.Required {
				if err := rule.Check(filePath, nil); err != nil {
					errs = multierr.Append(errs, &Failure{Rule: rule.Name, Path: filePath, Err: err})
				}
			}
			continue
		}

		for _, m := range matches {
			if err := rule.Check(m.Path, m.Value); err != nil {
				errs = multierr.Append(errs, &Failure{Rule: rule.Name, Path: filePath + ":" + m.Path, Err: err})
			}
		}
	}

	return errs
}
