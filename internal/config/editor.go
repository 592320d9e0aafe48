package config

import "strings"

// keyOf returns the key of a key=value line, or "" for comments, blanks
// and malformed lines.
func keyOf(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

// Set replaces the first line holding key, or appends one. Comments and
// blank lines are preserved. The bool reports whether an existing line was
// updated.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + value
	if strings.Contains(value, " ") {
		entry = key + `="` + value + `"`
	}

	for i, line := range lines {
		if keyOf(line) == key {
			lines[i] = entry
			return lines, true
		}
	}

	return append(lines, entry), false
}

// Unset drops every line holding key. The bool reports whether any was
// removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if keyOf(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
