package renderctx

import "strings"

// ParseKV splits a list of "key=value" flag strings into a map, splitting
// on the first "=" only so values may themselves contain "=". Segments
// with an empty key are discarded, matching spec.md §4.E and §6's
// key-value flag syntax, and the original Python's `x.split('=', 1)`
// call sites, here centralized instead of repeated per flag.
func ParseKV(entries []string) map[string]string {
	if len(entries) == 0 {
		return nil
	}
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
