// Package input provides completion for the goto-date prompt.
package input

import (
	"sort"
	"strings"
)

// Keyword is a word the goto prompt understands, with a short hint.
type Keyword struct {
	Name        string
	Description string
}

// Match returns the keywords that start with input, ignoring case. An exact
// match comes first, then shorter names. Input that looks like a date (it
// starts with a digit) or holds a space matches nothing.
func Match(input string, keywords []Keyword) []Keyword {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" || strings.ContainsRune(prefix, ' ') || isDigit(prefix[0]) {
		return nil
	}

	var matches []Keyword
	for _, kw := range keywords {
		if strings.HasPrefix(strings.ToLower(kw.Name), prefix) {
			matches = append(matches, kw)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ei := strings.EqualFold(matches[i].Name, prefix)
		ej := strings.EqualFold(matches[j].Name, prefix)
		if ei != ej {
			return ei
		}
		return len(matches[i].Name) < len(matches[j].Name)
	})
	return matches
}

// Complete returns the best keyword for input, if any.
func Complete(input string, keywords []Keyword) (string, bool) {
	matches := Match(input, keywords)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
