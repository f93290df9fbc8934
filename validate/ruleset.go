package validate

// RuleSet is an ordered collection of rules, built up by a caller (or by
// loading a declarative rule file) before being handed to an Adapter.
type RuleSet []Rule

// Enabled returns the subset of rs whose Name is not present in disabled,
// the Go stand-in for the original CLI's --flags disable list.
func (rs RuleSet) Enabled(disabled []string) RuleSet {
	if len(disabled) == 0 {
		return rs
	}
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}
	out := make(RuleSet, 0, len(rs))
	for _, r := range rs {
		if !skip[r.Name] {
			out = append(out, r)
		}
	}
	return out
}
