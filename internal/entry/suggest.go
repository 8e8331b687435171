package entry

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps how many names Suggest returns.
const maxSuggestions = 3

// Suggest returns the candidates closest to name, best first. Case-only
// mismatches come first since exact name matching is case-sensitive.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] && len(out) < maxSuggestions {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, c := range candidates {
		if c != name && strings.EqualFold(c, name) {
			add(c)
		}
	}
	for _, m := range fuzzy.Find(name, candidates) {
		add(m.Str)
	}
	// fuzzy matches name as a subsequence of a candidate; also try the
	// reverse so "Website v2" suggests "Website".
	if len(out) == 0 {
		lower := strings.ToLower(name)
		for _, c := range candidates {
			if strings.Contains(lower, strings.ToLower(c)) {
				add(c)
			}
		}
	}
	return out
}
