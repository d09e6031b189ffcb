package manifest

import (
	"path"
	"strings"
)

// matchName matches a test case name against a wildcard pattern. Patterns
// without wildcards fall back to a substring check.
func matchName(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.ContainsAny(pattern, "*?") {
		// Flexible match for patterns like "*Payment*": every literal part
		// must appear in the name.
		parts := strings.Split(pattern, "*")
		hasLiteral := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasLiteral = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasLiteral
	}

	return strings.Contains(name, pattern)
}
