package search

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match returns the rank of a match between q and val. 0 means best match. -1 means no match.
func Match(q, val string) int {
	return fuzzy.RankMatchFold(q, val)
}

// Filter returns the items whose key matches q, in their original order
func Filter[T any](items []T, q string, key func(T) string) []T {
	ret := make([]T, 0, len(items))
	for _, item := range items {
		if Match(q, key(item)) == -1 {
			continue
		}
		ret = append(ret, item)
	}
	return ret
}
