package dispatchers

import (
	"sort"
	"strings"

	"github.com/da-tools/da/internal/pattern"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	text     string
	distance int
}

// commandPrefix returns the leading literal words of a pattern, e.g.
// "config set" for "config set <key> <value>".
func commandPrefix(raw string) []string {
	var prefix []string
	for _, w := range pattern.SplitWords(raw) {
		if strings.HasPrefix(w, "<") || strings.HasPrefix(w, "[") {
			break
		}
		prefix = append(prefix, w)
	}
	return prefix
}

// FindSimilarPatterns ranks the registered patterns whose literal prefix is
// close to the start of the invocation. A distance of zero is kept: the
// command word was right and the arguments were not, so its usage helps.
func FindSimilarPatterns(invocation []string, patterns []string, maxResults int) []string {
	if len(invocation) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []suggestion

	for _, raw := range patterns {
		if seen[raw] {
			continue
		}
		seen[raw] = true

		prefix := commandPrefix(raw)
		if len(prefix) == 0 {
			continue
		}

		n := min(len(prefix), len(invocation))
		dist := levenshtein(strings.Join(invocation[:n], " "), strings.Join(prefix, " "))
		if dist <= maxSuggestionDistance {
			suggestions = append(suggestions, suggestion{text: raw, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].text < suggestions[j].text
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.text
	}

	return result
}
