// Package lexicon normalises raw command text before classification.
//
// Normalisation is a pure function: lowercase, punctuation stripping
// (decimal points inside numbers survive), filler-word removal, number-word
// to digit conversion, and unit-synonym canonicalisation. Unrecognised
// tokens pass through unchanged; classification treats them as opaque.
package lexicon

import (
	"strconv"
	"strings"
	"unicode"
)

// fillerWords are dropped during normalisation. The set mirrors common
// spoken-command padding ("bro please add ten apples").
var fillerWords = map[string]struct{}{
	"bro": {}, "please": {}, "um": {}, "uh": {}, "hey": {}, "okay": {},
	"can": {}, "you": {}, "could": {}, "would": {}, "like": {},
	"to": {}, "the": {}, "a": {}, "an": {}, "me": {}, "my": {},
	"i": {}, "want": {},
}

// unitSynonyms map measurement tokens to their canonical unit tag.
var unitSynonyms = map[string]string{
	"pc": "pcs", "pcs": "pcs", "piece": "pcs", "pieces": "pcs",
	"packet": "pcs", "packets": "pcs", "pack": "pcs", "packs": "pcs",
	"unit": "pcs", "units": "pcs",
	"kg": "kg", "kgs": "kg", "kilo": "kg", "kilos": "kg",
	"kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml",
}

// Normalise converts raw command text into the canonical token stream
// used by the classifier. It never fails.
func Normalise(text string) string {
	tokens := Tokenise(text)
	tokens = dropFillers(tokens)
	tokens = convertNumberWords(tokens)
	tokens = canonicaliseUnits(tokens)
	return strings.Join(tokens, " ")
}

// Tokenise lowercases and splits text on whitespace, stripping punctuation
// from each token. Decimal points between digits and hyphens inside words
// ("twenty-three") are preserved.
func Tokenise(text string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok := cleanToken(f); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// cleanToken strips punctuation from a single token.
func cleanToken(tok string) string {
	runes := []rune(tok)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.':
			// Keep only decimal points inside numbers ("1.50").
			if i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				b.WriteRune(r)
			}
		case r == '-':
			// Keep internal hyphens for hyphenated number words.
			if i > 0 && i < len(runes)-1 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func dropFillers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, filler := fillerWords[tok]; filler {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// canonicaliseUnits replaces unit synonyms adjacent to a quantity token
// with their canonical tag. A unit word with no neighbouring number is
// left alone: it may be part of an item name.
func canonicaliseUnits(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	for i, tok := range tokens {
		canonical, ok := unitSynonyms[tok]
		if !ok {
			continue
		}
		prevNumeric := i > 0 && IsNumber(tokens[i-1])
		nextNumeric := i < len(tokens)-1 && IsNumber(tokens[i+1])
		if prevNumeric || nextNumeric {
			out[i] = canonical
		}
	}
	return out
}

// IsNumber reports whether a token is an integer or decimal literal.
func IsNumber(tok string) bool {
	if tok == "" {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// IsInteger reports whether a token is an integer literal.
func IsInteger(tok string) bool {
	if tok == "" {
		return false
	}
	_, err := strconv.Atoi(tok)
	return err == nil
}

// IsUnit reports whether a token is a canonical unit tag or a synonym.
func IsUnit(tok string) bool {
	_, ok := unitSynonyms[tok]
	return ok
}

// CanonicalUnit returns the canonical tag for a unit synonym.
func CanonicalUnit(tok string) (string, bool) {
	c, ok := unitSynonyms[tok]
	return c, ok
}
