// Package fuzzy scores approximate item name matches on a 0 to 100 scale.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// DefaultThreshold is the minimum score treated as a usable match.
const DefaultThreshold = 80

// Match pairs a candidate name with its similarity score.
type Match struct {
	Name  string
	Score int
}

// Matcher compares names case-insensitively, folding trivial plural forms
// so "apples" resolves against "apple".
type Matcher struct {
	threshold int
}

// NewMatcher returns a matcher with the given minimum score. Values outside
// 0 to 100 fall back to the default.
func NewMatcher(threshold int) *Matcher {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the minimum usable score.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Score rates the similarity of two names from 0 to 100.
func (m *Matcher) Score(a, b string) int {
	na, nb := normalise(a), normalise(b)
	if na == nb {
		return 100
	}
	return int(math.Round(levenshtein.Similarity(na, nb, nil) * 100))
}

// BestMatch returns the highest-scoring candidate at or above the
// threshold. An exact case-insensitive hit wins immediately. Ties go to the
// shorter candidate, then lexicographic order, so the result is stable.
func (m *Matcher) BestMatch(query string, candidates []string) (Match, bool) {
	nq := strings.ToLower(strings.TrimSpace(query))
	for _, c := range candidates {
		if strings.ToLower(c) == nq {
			return Match{Name: c, Score: 100}, true
		}
	}

	best := Match{Score: -1}
	for _, c := range candidates {
		score := m.Score(query, c)
		if score < m.threshold {
			continue
		}
		if score > best.Score ||
			(score == best.Score && (len(c) < len(best.Name) ||
				(len(c) == len(best.Name) && c < best.Name))) {
			best = Match{Name: c, Score: score}
		}
	}
	if best.Score < 0 {
		return Match{}, false
	}
	return best, true
}

// Matches returns every candidate at or above the threshold, best first,
// capped at limit when limit is positive.
func (m *Matcher) Matches(query string, candidates []string, limit int) []Match {
	var out []Match
	for _, c := range candidates {
		if score := m.Score(query, c); score >= m.threshold {
			out = append(out, Match{Name: c, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if len(out[i].Name) != len(out[j].Name) {
			return len(out[i].Name) < len(out[j].Name)
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// normalise lowercases, trims, and singularises each word.
func normalise(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = singularise(w)
	}
	return strings.Join(words, " ")
}

// singularise strips trivial plural suffixes. Words ending in "ss" are
// left alone, "es" comes off only after a sibilant stem, otherwise a
// single trailing "s" is dropped.
func singularise(w string) string {
	if len(w) < 3 || !strings.HasSuffix(w, "s") {
		return w
	}
	if strings.HasSuffix(w, "ss") {
		return w
	}
	if strings.HasSuffix(w, "es") {
		stem := w[:len(w)-2]
		for _, suf := range []string{"s", "x", "z", "ch", "sh"} {
			if strings.HasSuffix(stem, suf) {
				return stem
			}
		}
	}
	return w[:len(w)-1]
}
