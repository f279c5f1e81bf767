package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "apple", b: "apple", want: 100},
		{name: "case insensitive", a: "Apple", b: "APPLE", want: 100},
		{name: "plural folds", a: "apples", b: "apple", want: 100},
		{name: "sibilant plural folds", a: "boxes", b: "box", want: 100},
		{name: "whitespace trimmed", a: "  apple ", b: "apple", want: 100},
		{name: "single dropped letter", a: "aple", b: "apple", want: 80},
		{name: "unrelated", a: "apple", b: "zucchini", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Score(tt.a, tt.b))
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	close := m.Score("banana", "bananas")
	far := m.Score("banana", "bandana")
	assert.Greater(t, close, far)
}

func TestBestMatch(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	candidates := []string{"apple", "banana", "orange juice", "milk"}

	t.Run("exact hit wins immediately", func(t *testing.T) {
		match, ok := m.BestMatch("banana", candidates)
		require.True(t, ok)
		assert.Equal(t, "banana", match.Name)
		assert.Equal(t, 100, match.Score)
	})

	t.Run("exact hit ignores case", func(t *testing.T) {
		match, ok := m.BestMatch("BANANA", candidates)
		require.True(t, ok)
		assert.Equal(t, "banana", match.Name)
	})

	t.Run("plural resolves to the singular item", func(t *testing.T) {
		match, ok := m.BestMatch("apples", candidates)
		require.True(t, ok)
		assert.Equal(t, "apple", match.Name)
		assert.Equal(t, 100, match.Score)
	})

	t.Run("near miss resolves", func(t *testing.T) {
		match, ok := m.BestMatch("aple", candidates)
		require.True(t, ok)
		assert.Equal(t, "apple", match.Name)
	})

	t.Run("nothing close enough", func(t *testing.T) {
		_, ok := m.BestMatch("zucchini", candidates)
		assert.False(t, ok)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		_, ok := m.BestMatch("apple", nil)
		assert.False(t, ok)
	})

	t.Run("tie breaks to the earlier name", func(t *testing.T) {
		match, ok := m.BestMatch("pear", []string{"peart", "pearl"})
		require.True(t, ok)
		assert.Equal(t, "pearl", match.Name)
	})
}

func TestMatches(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	candidates := []string{"apple", "apples", "applet", "banana"}

	t.Run("sorted best first", func(t *testing.T) {
		matches := m.Matches("apple", candidates, 0)
		require.NotEmpty(t, matches)
		assert.Equal(t, "apple", matches[0].Name)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
		}
	})

	t.Run("limit caps results", func(t *testing.T) {
		matches := m.Matches("apple", candidates, 1)
		assert.Len(t, matches, 1)
	})

	t.Run("no matches returns empty", func(t *testing.T) {
		assert.Empty(t, m.Matches("zucchini", candidates, 0))
	})
}

func TestNewMatcherBounds(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewMatcher(-1).Threshold())
	assert.Equal(t, DefaultThreshold, NewMatcher(101).Threshold())
	assert.Equal(t, 90, NewMatcher(90).Threshold())
}

func TestSingularise(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "apples", want: "apple"},
		{in: "boxes", want: "box"},
		{in: "glasses", want: "glass"},
		{in: "grass", want: "grass"},
		{in: "milk", want: "milk"},
		{in: "is", want: "is"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, singularise(tt.in))
		})
	}
}
