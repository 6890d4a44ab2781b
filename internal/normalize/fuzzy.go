package normalize

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio is the sequence-matcher similarity of a and b in [0,1], computed
// over runes so Devanagari compares per character rather than per byte.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// CloseMatch returns the candidate most similar to word with a ratio of at
// least cutoff. Equal scores go to the lexicographically greater candidate,
// so results do not depend on candidate order.
func CloseMatch(word string, candidates []string, cutoff float64) (string, bool) {
	if word == "" || len(candidates) == 0 {
		return "", false
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(splitRunes(word))

	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, c := range candidates {
		m.SetSeq1(splitRunes(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > bestScore || (score == bestScore && c > best) {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
