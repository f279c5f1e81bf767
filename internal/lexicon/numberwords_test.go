package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeral(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		want     int
		consumed int
	}{
		{"single digit word", []string{"five"}, 5, 1},
		{"teen", []string{"fifteen"}, 15, 1},
		{"tens", []string{"fifty"}, 50, 1},
		{"tens plus ones", []string{"fifty", "five"}, 55, 2},
		{"hyphenated", []string{"twenty-three"}, 23, 1},
		{"hundred", []string{"two", "hundred"}, 200, 2},
		{"hundred and remainder", []string{"two", "hundred", "fifty"}, 250, 3},
		{"hundred with and", []string{"two", "hundred", "and", "fifty"}, 250, 4},
		{"bare hundred", []string{"hundred"}, 100, 1},
		{"thousand", []string{"three", "thousand"}, 3000, 2},
		{"thousand composite", []string{"two", "thousand", "three", "hundred"}, 2300, 4},
		{"zero", []string{"zero"}, 0, 1},
		{"run stops at non-number", []string{"five", "apples"}, 5, 1},
		{"not a number", []string{"apples"}, 0, 0},
		{"digits not consumed", []string{"5"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed := parseNumeral(tt.tokens)
			assert.Equal(t, tt.consumed, consumed, "consumed")
			if tt.consumed > 0 {
				assert.Equal(t, tt.want, got, "value")
			}
		})
	}
}

func TestConvertNumberWords(t *testing.T) {
	got := convertNumberWords([]string{"add", "two", "hundred", "fifty", "apples", "and", "three", "pears"})
	assert.Equal(t, []string{"add", "250", "apples", "and", "3", "pears"}, got)
}

func TestConvertNumberWordsAndNotSwallowed(t *testing.T) {
	// "and" between two separate numerals belongs to neither.
	got := convertNumberWords([]string{"five", "and", "apples"})
	assert.Equal(t, []string{"5", "and", "apples"}, got)
}
