package validate

import "regexp"

var orderByPattern = regexp.MustCompile(`(?i)ORDER\s+BY`)

// containsOrderBy reports whether query has an ORDER BY clause anywhere,
// ignoring case and the amount of whitespace between the two words.
func containsOrderBy(query string) bool {
	return orderByPattern.MatchString(query)
}
