// Package fuzzy provides edit-distance matching for "did you mean"
// suggestions on unknown option and command names.
package fuzzy

import "strings"

// minInputLength guards against suggesting for inputs too short to carry a
// meaningful typo signal.
const minInputLength = 2

// FindBest returns the candidate closest to input within maxDistance edits,
// or the empty string when nothing qualifies. Ties are broken by preferring
// longer common prefixes, then earlier candidates.
func FindBest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDistance := maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := distance(input, lower, maxDistance)
		if d > maxDistance {
			continue
		}
		p := commonPrefix(input, lower)
		if d < bestDistance || (d == bestDistance && p > bestPrefix) {
			best = candidate
			bestDistance = d
			bestPrefix = p
		}
	}
	return best
}

// distance computes the Levenshtein distance between a and b, returning
// max+1 as soon as the result is known to exceed max.
func distance(a, b string, max int) int {
	if abs(len(a)-len(b)) > max {
		return max + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > max {
			return max + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
