package completions

import (
	"sort"

	"github.com/da-tools/da/internal/dispatchers"
	"github.com/da-tools/da/internal/pattern"
)

// Candidates returns the sorted, de-duplicated words any route accepts after
// words. Routes whose pattern does not compile are skipped.
func Candidates(routes []dispatchers.Route, words []string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, r := range routes {
		p, err := pattern.Compile(r.Pattern)
		if err != nil {
			continue
		}
		for _, c := range p.Complete(words) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	sort.Strings(out)
	return out
}
