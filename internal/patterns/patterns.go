// Package patterns implements the intent template library and classifier.
//
// Classification is first-match-wins over an ordered list of templates:
// templates requiring more literal keywords are ranked above generic ones,
// so specificity is the tie-break policy. Each template pairs a keyword
// matcher with an entity extractor. The library is immutable after
// construction and safe for concurrent readers; classification itself is
// stateless.
package patterns

import (
	"strings"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/lexicon"
)

// Extractor pulls raw entities out of the normalised token stream.
type Extractor func(tokens []string) domain.Entities

// Group is a set of alternative literal keywords. A group matches when any
// of its words (or space-separated phrases) appears in the token stream,
// or, for Numeric groups, when any numeric token is present.
type Group struct {
	// Words are the literal alternatives. Phrases match consecutive tokens.
	Words []string

	// Numeric groups match any integer or decimal token instead of words.
	Numeric bool

	// Required groups must match for the template to match at all.
	Required bool

	// Weight is this group's contribution to template strength.
	Weight int
}

// matches reports whether the group is satisfied by the tokens.
func (g Group) matches(tokens []string) bool {
	if g.Numeric {
		for _, tok := range tokens {
			if lexicon.IsNumber(tok) {
				return true
			}
		}
		return false
	}
	for _, w := range g.Words {
		if w == nounSentinel {
			if hasNoun(tokens) {
				return true
			}
			continue
		}
		if containsPhrase(tokens, w) {
			return true
		}
	}
	return false
}

// containsPhrase checks for a word or a run of consecutive tokens.
func containsPhrase(tokens []string, phrase string) bool {
	parts := strings.Fields(phrase)
	if len(parts) == 0 {
		return false
	}
	if len(parts) == 1 {
		for _, tok := range tokens {
			if tok == parts[0] {
				return true
			}
		}
		return false
	}
outer:
	for i := 0; i+len(parts) <= len(tokens); i++ {
		for j, p := range parts {
			if tokens[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}

// Template associates a matcher with an intent and an extraction rule.
type Template struct {
	// Name identifies the template in logs.
	Name string

	// Intent is assigned when the template matches.
	Intent domain.Intent

	// Groups are the keyword groups. All required groups must match.
	Groups []Group

	// Extract pulls entities from the tokens after a match.
	Extract Extractor
}

// Match reports whether all required groups are satisfied, along with the
// matched strength and the total template weight.
func (t Template) Match(tokens []string) (strength, weight int, ok bool) {
	ok = true
	for _, g := range t.Groups {
		weight += g.Weight
		if g.matches(tokens) {
			strength += g.Weight
		} else if g.Required {
			ok = false
		}
	}
	return strength, weight, ok
}

// Library is the ordered, process-wide read-only template collection.
type Library struct {
	templates []Template
}

// NewLibrary builds the default template set in priority order.
func NewLibrary() *Library {
	return &Library{templates: defaultTemplates()}
}

// Templates returns the ordered template list.
func (l *Library) Templates() []Template {
	return l.templates
}

// Classify applies the library to normalised text. The first template whose
// required groups all match wins. Confidence is matched strength over
// template weight; below the threshold the intent resolves to unknown while
// keeping the computed confidence. With no match at all the intent is
// unknown with confidence 0.
func (l *Library) Classify(normalized string, threshold float64) (domain.Intent, domain.Entities, float64) {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return domain.IntentUnknown, domain.Entities{}, 0
	}

	for _, t := range l.templates {
		strength, weight, ok := t.Match(tokens)
		if !ok {
			continue
		}
		confidence := float64(strength) / float64(weight)
		if confidence < threshold {
			return domain.IntentUnknown, domain.Entities{}, confidence
		}
		return t.Intent, t.Extract(tokens), confidence
	}

	return domain.IntentUnknown, domain.Entities{}, 0
}
