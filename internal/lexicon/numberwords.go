package lexicon

import (
	"strconv"
	"strings"
)

// Number-word tables covering standard English numeral grammar.
var (
	onesWords = map[string]int{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	}
	teenWords = map[string]int{
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
		"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
		"eighteen": 18, "nineteen": 19,
	}
	tensWords = map[string]int{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
)

// wordValue looks up a single number word.
func wordValue(word string) (int, bool) {
	if v, ok := onesWords[word]; ok {
		return v, true
	}
	if v, ok := teenWords[word]; ok {
		return v, true
	}
	if v, ok := tensWords[word]; ok {
		return v, true
	}
	return 0, false
}

// isNumberWord reports whether a token participates in a numeral run.
// Hyphenated compounds ("twenty-three") count when every part is a
// number word.
func isNumberWord(tok string) bool {
	if tok == "hundred" || tok == "thousand" {
		return true
	}
	for _, part := range strings.Split(tok, "-") {
		if _, ok := wordValue(part); !ok {
			return false
		}
	}
	return true
}

// convertNumberWords replaces maximal runs of number words with digits:
// "two hundred fifty" becomes "250", "twenty-three" becomes "23".
func convertNumberWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		value, consumed := parseNumeral(tokens[i:])
		if consumed > 0 {
			out = append(out, strconv.Itoa(value))
			i += consumed
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// parseNumeral consumes the longest prefix of tokens forming an English
// numeral, combining additively and multiplicatively: hundreds scale the
// running group, thousands flush it into the total. Returns the value and
// the number of tokens consumed (0 when the first token is not numeric).
func parseNumeral(tokens []string) (int, int) {
	total, current := 0, 0
	consumed := 0

	for i, tok := range tokens {
		switch {
		case tok == "hundred":
			if current == 0 {
				current = 1
			}
			current *= 100
		case tok == "thousand":
			if current == 0 {
				current = 1
			}
			total += current * 1000
			current = 0
		case tok == "and" && consumed > 0:
			// "two hundred and fifty": skip the connective only when
			// a number word follows, otherwise the run ends here.
			if i+1 >= len(tokens) || !isNumberWord(tokens[i+1]) {
				return total + current, consumed
			}
		case isNumberWord(tok):
			v, ok := compoundValue(tok)
			if !ok {
				return total + current, consumed
			}
			current += v
		default:
			return total + current, consumed
		}
		consumed = i + 1
	}

	return total + current, consumed
}

// compoundValue resolves a possibly hyphenated number word ("fifty",
// "twenty-three").
func compoundValue(tok string) (int, bool) {
	sum := 0
	for _, part := range strings.Split(tok, "-") {
		v, ok := wordValue(part)
		if !ok {
			return 0, false
		}
		sum += v
	}
	return sum, true
}
