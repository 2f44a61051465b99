package preset

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// find returns the index of the exact (case-insensitive) match for name,
// falling back to the best fuzzy match.
func find(name string, names []string) (int, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return 0, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	for i, n := range names {
		if strings.EqualFold(n, query) {
			return i, nil
		}
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return matches[0].Index, nil
}

// search returns the indexes of names matching query in rank order.
func search(query string, names []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(names))
		for i := range names {
			all[i] = i
		}
		return all
	}
	matches := fuzzy.Find(query, names)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
