package domain

import (
	"github.com/shopspring/decimal"
)

// Intent is the categorical action a command requests.
type Intent string

// Recognised intents.
const (
	// IntentAddItem creates an item or tops up existing stock.
	IntentAddItem Intent = "add_item"

	// IntentUpdateStock adjusts an existing item's quantity.
	IntentUpdateStock Intent = "update_stock"

	// IntentRemoveItem removes stock or deletes an item entirely.
	IntentRemoveItem Intent = "remove_item"

	// IntentQuery reads one item or the whole inventory.
	IntentQuery Intent = "query"

	// IntentReport generates an aggregated report.
	IntentReport Intent = "report"

	// IntentUnknown is returned when no template matches confidently.
	IntentUnknown Intent = "unknown"
)

// IsValid returns true if the intent is recognised.
func (i Intent) IsValid() bool {
	switch i {
	case IntentAddItem, IntentUpdateStock, IntentRemoveItem, IntentQuery, IntentReport, IntentUnknown:
		return true
	default:
		return false
	}
}

// Mutates returns true if executing the intent changes the ledger.
func (i Intent) Mutates() bool {
	switch i {
	case IntentAddItem, IntentUpdateStock, IntentRemoveItem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}

// Entities holds the values extracted from one command.
// Zero values mean "not present in the command".
type Entities struct {
	// ItemName is the extracted item name, before ledger resolution.
	ItemName string

	// Quantity is the extracted quantity, nil when the command carried none.
	Quantity *int

	// Delta is the signed stock adjustment for update commands.
	Delta *int

	// Absolute marks set-style updates ("make that 15"): Quantity is the
	// target stock level, not an adjustment.
	Absolute bool

	// Price is the extracted unit price, nil when absent.
	Price *decimal.Decimal

	// Category is the extracted category, empty when absent.
	Category string

	// ReportType is the requested report kind for report commands.
	ReportType ReportType

	// QueryAll marks inventory-wide queries ("show all items").
	QueryAll bool

	// NeedsReference marks commands whose item must be resolved from
	// context memory ("make that 15", "add 5 more").
	NeedsReference bool
}

// Map renders the entities as the boundary map form, omitting absent values.
func (e Entities) Map() map[string]any {
	m := make(map[string]any)
	if e.ItemName != "" {
		m["item_name"] = e.ItemName
	}
	if e.Quantity != nil {
		m["quantity"] = *e.Quantity
	}
	if e.Delta != nil {
		m["quantity_change"] = *e.Delta
	}
	if e.Absolute {
		m["absolute"] = true
	}
	if e.Price != nil {
		m["price"] = e.Price.InexactFloat64()
	}
	if e.Category != "" {
		m["category"] = e.Category
	}
	if e.ReportType != "" {
		m["report_type"] = string(e.ReportType)
	}
	if e.QueryAll {
		m["query_type"] = "all"
	}
	return m
}

// ParsedCommand is the ephemeral result of the understanding pipeline.
// It is produced fresh per input and optionally recorded in context memory.
type ParsedCommand struct {
	// Intent is the classified intent.
	Intent Intent

	// Entities are the extracted values.
	Entities Entities

	// Confidence is the classifier confidence in [0, 1].
	Confidence float64

	// Normalized is the input text after normalisation.
	Normalized string
}

// ParseResult is the boundary form of a parse outcome, exposed to
// external callers (CLI JSON output, front ends).
type ParseResult struct {
	Success        bool           `json:"success"`
	NormalizedText string         `json:"normalized_text"`
	Intent         string         `json:"intent"`
	Entities       map[string]any `json:"entities"`
	Confidence     float64        `json:"confidence"`
	Error          string         `json:"error,omitempty"`
}

// Result converts a parsed command into its boundary form.
func (pc ParsedCommand) Result(err error) ParseResult {
	r := ParseResult{
		Success:        err == nil,
		NormalizedText: pc.Normalized,
		Intent:         string(pc.Intent),
		Entities:       pc.Entities.Map(),
		Confidence:     pc.Confidence,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// CommandResult is the outcome of executing a parsed command against
// the ledger or report aggregator.
type CommandResult struct {
	// Intent the result belongs to.
	Intent Intent

	// ItemID is set for add commands.
	ItemID int64

	// ItemName is the resolved item name the command acted on.
	ItemName string

	// Quantity is the quantity affected by the command.
	Quantity int

	// NewQuantity is the stock level after a mutation.
	NewQuantity int

	// Removed marks an item deleted entirely.
	Removed bool

	// Item holds the single item for item queries.
	Item *Item

	// Items holds the inventory for query-all results.
	Items []Item

	// Report holds the generated report for report commands.
	Report *Report
}
