package suggest

import (
	"slices"
	"strings"
)

// MinSimilarity is the case-insensitive similarity a candidate needs to be
// suggested.
const MinSimilarity = 0.6

// MaxSuggestions caps the number of names returned by Closest.
const MaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Closest returns the candidates most similar to name, best first, ties in
// candidate order. Exact matches, blank candidates and duplicates are
// skipped. It returns nil when nothing is close enough.
func Closest(name string, candidates []string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var (
		matches []scored
		seen    = map[string]struct{}{}
	)

	for _, c := range candidates {
		if c == name || strings.TrimSpace(c) == "" {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(needle, strings.ToLower(c))
		if score >= MinSimilarity {
			matches = append(matches, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	var names []string
	for _, m := range matches {
		names = append(names, m.name)
	}

	return names
}
