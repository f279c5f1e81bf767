package patterns

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/lexicon"
)

// defaultTemplates returns the built-in templates in priority order.
// Referential and collection forms come first so that phrases such as
// "make that 15" or "show everything" are never swallowed by the generic
// add, remove, or query templates.
func defaultTemplates() []Template {
	return []Template{
		{
			Name:   "set-reference",
			Intent: domain.IntentUpdateStock,
			Groups: []Group{
				{Words: []string{"make that", "change that", "set that", "make it", "change it", "set it"}, Required: true, Weight: 3},
				{Numeric: true, Required: true, Weight: 1},
			},
			Extract: extractSetReference,
		},
		{
			Name:   "add-more",
			Intent: domain.IntentUpdateStock,
			Groups: []Group{
				{Words: []string{"more"}, Required: true, Weight: 2},
				{Words: []string{"add", "get", "put", "bought", "buy", "need"}, Required: true, Weight: 1},
				{Numeric: true, Weight: 1},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractAddMore,
		},
		{
			Name:   "query-all",
			Intent: domain.IntentQuery,
			Groups: []Group{
				{Words: []string{"everything", "all items", "all stock", "whole inventory", "entire inventory", "full inventory", "list all", "show all", "what do have", "what have"}, Required: true, Weight: 3},
			},
			Extract: extractQueryAll,
		},
		{
			Name:   "report",
			Intent: domain.IntentReport,
			Groups: []Group{
				{Words: []string{"report", "summary", "stats", "statistics", "overview"}, Required: true, Weight: 3},
				{Words: []string{"daily", "weekly", "monthly", "today", "week", "month"}, Weight: 1},
				{Words: []string{"inventory", "stock", "give", "show", "generate"}, Weight: 1},
			},
			Extract: extractReport,
		},
		{
			Name:   "delta-update",
			Intent: domain.IntentUpdateStock,
			Groups: []Group{
				{Words: []string{"increase", "decrease", "reduce", "raise", "lower"}, Required: true, Weight: 3},
				{Numeric: true, Required: true, Weight: 1},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractDeltaUpdate,
		},
		{
			Name:   "update-stock",
			Intent: domain.IntentUpdateStock,
			Groups: []Group{
				{Words: []string{"set", "update", "change", "adjust", "correct"}, Required: true, Weight: 3},
				{Numeric: true, Required: true, Weight: 1},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractUpdate,
		},
		{
			Name:   "remove-item",
			Intent: domain.IntentRemoveItem,
			Groups: []Group{
				{Words: []string{"remove", "delete", "sold", "sell", "used", "take", "drop", "subtract", "minus", "gave"}, Required: true, Weight: 3},
				{Numeric: true, Weight: 1},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractRemove,
		},
		{
			Name:   "add-item",
			Intent: domain.IntentAddItem,
			Groups: []Group{
				{Words: []string{"add", "bought", "buy", "got", "purchased", "purchase", "received", "restock", "new"}, Required: true, Weight: 3},
				{Numeric: true, Weight: 1},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractAdd,
		},
		{
			Name:   "query-item",
			Intent: domain.IntentQuery,
			Groups: []Group{
				{Words: []string{"how many", "how much", "do have", "have any", "check", "count", "left", "show", "find", "what"}, Required: true, Weight: 3},
				{Words: nounHints, Weight: 1},
			},
			Extract: extractQuery,
		},
	}
}

// nounHints are tokens whose presence suggests the command names a thing.
// Any token that is not a keyword, number, or unit counts as a noun, so the
// hint group is satisfied by checking for leftovers rather than literals.
var nounHints = []string{nounSentinel}

const nounSentinel = "\x00noun"

// keywordTokens is every literal word used by any template, plus the
// connectives consumed during extraction. Tokens outside this set that are
// neither numeric nor units are treated as item name material.
var keywordTokens = map[string]bool{
	"add": true, "bought": true, "buy": true, "got": true, "purchased": true,
	"purchase": true, "received": true, "stock": true, "restock": true,
	"new": true, "remove": true, "delete": true, "sold": true, "sell": true,
	"used": true, "take": true, "drop": true, "subtract": true, "minus": true,
	"gave": true, "set": true, "update": true, "change": true, "adjust": true,
	"correct": true, "increase": true, "decrease": true, "reduce": true,
	"raise": true, "lower": true, "by": true,
	"make": true, "that": true, "it": true, "more": true,
	"how": true, "many": true, "much": true, "do": true, "have": true,
	"any": true, "check": true, "count": true, "left": true, "show": true,
	"find": true, "what": true, "report": true, "summary": true,
	"stats": true, "statistics": true, "overview": true, "daily": true,
	"weekly": true, "monthly": true, "today": true, "week": true,
	"month": true, "give": true, "generate": true, "inventory": true,
	"everything": true, "all": true, "items": true, "whole": true,
	"entire": true, "full": true, "list": true, "of": true, "at": true,
	"each": true, "for": true, "in": true, "on": true, "from": true,
	"and": true, "with": true, "is": true, "are": true, "there": true,
	"put": true, "get": true, "need": true, "price": true, "priced": true,
	"category": true, "dollars": true, "dollar": true, "cents": true,
	"now": true, "up": true, "out": true, "some": true, "total": true,
	"quantity": true, "level": true, "levels": true,
}

func isNounToken(tok string) bool {
	if keywordTokens[tok] {
		return false
	}
	if lexicon.IsNumber(tok) || lexicon.IsUnit(tok) {
		return false
	}
	return true
}

// hasNoun reports whether any token is item name material.
func hasNoun(tokens []string) bool {
	for _, tok := range tokens {
		if isNounToken(tok) {
			return true
		}
	}
	return false
}

// extractName collects leftover tokens into an item name, capped at three
// words to keep trailing chatter out of the name.
func extractName(tokens []string) string {
	var words []string
	for _, tok := range tokens {
		if !isNounToken(tok) {
			continue
		}
		words = append(words, tok)
		if len(words) == 3 {
			break
		}
	}
	return strings.Join(words, " ")
}

// extractQuantity returns the first integer token.
func extractQuantity(tokens []string) *int {
	for i, tok := range tokens {
		if !lexicon.IsInteger(tok) {
			continue
		}
		if i > 0 && isPriceMarker(tokens[i-1]) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}

func isPriceMarker(tok string) bool {
	return tok == "at" || tok == "for" || tok == "price" || tok == "priced"
}

// extractPrice looks for "at N", "price N", "priced N", "for N each",
// and trailing "N dollars". Decimal tokens anywhere also read as a price
// because quantities are whole numbers.
func extractPrice(tokens []string) *decimal.Decimal {
	pick := func(tok string) *decimal.Decimal {
		d, err := decimal.NewFromString(tok)
		if err != nil {
			return nil
		}
		return &d
	}
	for i, tok := range tokens {
		if !lexicon.IsNumber(tok) {
			continue
		}
		if i > 0 && isPriceMarker(tokens[i-1]) {
			if tokens[i-1] == "for" && (i+1 >= len(tokens) || tokens[i+1] != "each") {
				continue
			}
			return pick(tok)
		}
		if i+1 < len(tokens) && (tokens[i+1] == "dollars" || tokens[i+1] == "dollar" || tokens[i+1] == "each") {
			return pick(tok)
		}
		if !lexicon.IsInteger(tok) {
			return pick(tok)
		}
	}
	return nil
}

// extractCategory reads "in <word> category" or "category <word>", and
// returns the remaining tokens with the category phrase removed so the
// category word never bleeds into the item name.
func extractCategory(tokens []string) (string, []string) {
	for i, tok := range tokens {
		if tok != "category" {
			continue
		}
		if i > 0 && isNounToken(tokens[i-1]) {
			return titleWord(tokens[i-1]), cut(tokens, i-1, i+1)
		}
		if i+1 < len(tokens) && isNounToken(tokens[i+1]) {
			return titleWord(tokens[i+1]), cut(tokens, i, i+2)
		}
		return "", cut(tokens, i, i+1)
	}
	return "", tokens
}

// cut returns tokens without the half-open range [from, to).
func cut(tokens []string, from, to int) []string {
	out := make([]string, 0, len(tokens))
	out = append(out, tokens[:from]...)
	out = append(out, tokens[to:]...)
	return out
}

func titleWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func extractAdd(tokens []string) domain.Entities {
	category, rest := extractCategory(tokens)
	return domain.Entities{
		ItemName: extractName(rest),
		Quantity: extractQuantity(rest),
		Price:    extractPrice(rest),
		Category: category,
	}
}

func extractRemove(tokens []string) domain.Entities {
	return domain.Entities{
		ItemName: extractName(tokens),
		Quantity: extractQuantity(tokens),
	}
}

func extractUpdate(tokens []string) domain.Entities {
	return domain.Entities{
		ItemName: extractName(tokens),
		Quantity: extractQuantity(tokens),
		Absolute: true,
	}
}

// extractDeltaUpdate reads "increase rice by 5" style commands. The verb
// carries the sign: decrease, reduce, and lower negate the amount.
func extractDeltaUpdate(tokens []string) domain.Entities {
	e := domain.Entities{ItemName: extractName(tokens)}
	negative := false
	for _, tok := range tokens {
		switch tok {
		case "decrease", "reduce", "lower":
			negative = true
		}
	}
	if q := extractQuantity(tokens); q != nil {
		d := *q
		if negative {
			d = -d
		}
		e.Delta = &d
	}
	if e.ItemName == "" {
		e.NeedsReference = true
	}
	return e
}

func extractSetReference(tokens []string) domain.Entities {
	e := domain.Entities{
		Quantity:       extractQuantity(tokens),
		Absolute:       true,
		NeedsReference: true,
	}
	if name := extractName(tokens); name != "" {
		e.ItemName = name
		e.NeedsReference = false
	}
	return e
}

func extractAddMore(tokens []string) domain.Entities {
	e := domain.Entities{ItemName: extractName(tokens)}
	if q := extractQuantity(tokens); q != nil {
		e.Delta = q
	} else {
		one := 1
		e.Delta = &one
	}
	if e.ItemName == "" {
		e.NeedsReference = true
	}
	return e
}

func extractQuery(tokens []string) domain.Entities {
	return domain.Entities{ItemName: extractName(tokens)}
}

func extractQueryAll(tokens []string) domain.Entities {
	return domain.Entities{QueryAll: true}
}

func extractReport(tokens []string) domain.Entities {
	kind := domain.ReportSummary
	for _, tok := range tokens {
		switch tok {
		case "daily", "today":
			kind = domain.ReportDaily
		case "weekly", "week":
			kind = domain.ReportWeekly
		case "monthly", "month":
			kind = domain.ReportMonthly
		}
	}
	return domain.Entities{ReportType: kind}
}
