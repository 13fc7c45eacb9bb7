package roster

import (
	"slices"
	"strings"
)

// Matches reports whether a free-text name refers to a roster name. The
// comparison ignores case and surrounding whitespace and accepts the full
// name, the name with all spaces removed, or any single word of it.
func Matches(candidate, canonical string) bool {
	c := normalize(candidate)
	if c == "" {
		return false
	}

	words := strings.Fields(normalize(canonical))
	if c == strings.Join(words, " ") {
		return true
	}
	if c == strings.Join(words, "") {
		return true
	}

	return slices.Contains(words, c)
}

// MatchesUniquely reports whether exactly one name of pool matches candidate.
func MatchesUniquely(candidate string, pool []string) bool {
	_, ok := Resolve(candidate, pool)
	return ok
}

// Resolve returns the only pool entry matching candidate. Ambiguous and
// missing matches both report false.
func Resolve(candidate string, pool []string) (string, bool) {
	var (
		found string
		hits  int
	)
	for _, name := range pool {
		if !Matches(candidate, name) {
			continue
		}
		hits++
		if hits > 1 {
			return "", false
		}
		found = name
	}

	return found, hits == 1
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
