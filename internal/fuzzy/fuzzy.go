// Package fuzzy implements approximate string matching used by skill
// extraction and compatibility scoring. Similarity is the
// Ratcliff/Obershelp ratio: twice the number of characters in matching
// blocks divided by the total length of both strings, with matching
// blocks found by recursively taking the longest common substring.
package fuzzy

import "sort"

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings
// are considered identical.
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingChars(a, b)) / float64(total)
}

// matchingChars counts characters covered by matching blocks. The
// longest common substring splits both strings; the regions before and
// after it are matched recursively.
func matchingChars(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchingChars(a[:ai], b[:bi]) + matchingChars(a[ai+size:], b[bi+size:])
}

// longestMatch locates the longest common substring of a and b,
// returning its start offsets and length. Ties resolve to the earliest
// occurrence in a.
func longestMatch(a, b string) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return ai, bi, size
}

// scored pairs a candidate with its similarity to the query word.
type scored struct {
	value string
	ratio float64
}

// CloseMatches returns up to n candidates from possibilities whose
// similarity to word is at least cutoff, best first. Candidates with
// equal similarity keep their input order.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 || len(possibilities) == 0 {
		return nil
	}
	results := make([]scored, 0, len(possibilities))
	for _, candidate := range possibilities {
		if r := Ratio(word, candidate); r >= cutoff {
			results = append(results, scored{value: candidate, ratio: r})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ratio > results[j].ratio
	})
	if len(results) > n {
		results = results[:n]
	}
	matches := make([]string, len(results))
	for i, res := range results {
		matches[i] = res.value
	}
	return matches
}

// BestMatch returns the single closest candidate at or above cutoff.
// The second return is false when nothing clears the cutoff.
func BestMatch(word string, possibilities []string, cutoff float64) (string, bool) {
	matches := CloseMatches(word, possibilities, 1, cutoff)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
