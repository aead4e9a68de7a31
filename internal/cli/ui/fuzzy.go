package ui

import (
	"sort"
	"strings"
)

const (
	similarCutoff = 3
	similarLimit  = 3
)

// FindSimilar returns up to three candidates within a small edit distance
// of target, closest first. Matching is case-insensitive so that a typo'd
// class name still lands on its declaration.
func FindSimilar(target string, candidates []string) []string {
	key := strings.ToLower(target)

	type match struct {
		name string
		dist int
	}
	var matches []match
	for _, c := range candidates {
		if d := editDistance(key, strings.ToLower(c)); d <= similarCutoff {
			matches = append(matches, match{name: c, dist: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	n := min(len(matches), similarLimit)
	out := make([]string, n)
	for i := range out {
		out[i] = matches[i].name
	}
	return out
}

// editDistance is the Levenshtein distance between a and b, computed with
// two rolling rows instead of a full matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			curr[j] = min(sub, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
