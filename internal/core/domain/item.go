package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxItemNameLength is the longest accepted item name.
const MaxItemNameLength = 100

// DefaultCategory is assigned to items created without an explicit category.
const DefaultCategory = "General"

// Item represents a stocked inventory item.
// Names are unique across live items, compared case-insensitively.
type Item struct {
	// ID is the stable integer identifier assigned by the store.
	ID int64

	// Name is the unique item name (case-insensitive, max 100 chars).
	Name string

	// Category groups related items. Defaults to "General".
	Category string

	// Quantity is the current stock level. Never negative.
	Quantity int

	// UnitPrice is the price per unit. Never negative.
	UnitPrice decimal.Decimal

	// CreatedAt is when the item was first added.
	CreatedAt time.Time

	// UpdatedAt is when the item was last mutated.
	UpdatedAt time.Time
}

// TotalValue returns quantity multiplied by unit price.
func (i Item) TotalValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ValidateName checks an item name for length and emptiness.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "item_name", Reason: "item name is required"}
	}
	if len(name) > MaxItemNameLength {
		return &ValidationError{Field: "item_name", Reason: "item name exceeds 100 characters"}
	}
	return nil
}

// TransactionAction identifies the kind of ledger mutation a transaction records.
type TransactionAction string

// Recognised transaction actions.
const (
	// ActionAdd records stock added via an add command.
	ActionAdd TransactionAction = "add"

	// ActionRemove records stock removed via a quantity-bearing remove.
	ActionRemove TransactionAction = "remove"

	// ActionDelete records an item deleted entirely.
	ActionDelete TransactionAction = "delete"

	// ActionUpdate records a signed stock adjustment.
	ActionUpdate TransactionAction = "update"
)

// IsValid returns true if the action is recognised.
func (a TransactionAction) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionDelete, ActionUpdate:
		return true
	default:
		return false
	}
}

// Transaction is one append-only audit record of a ledger mutation.
// Every successful mutation writes exactly one transaction, atomically
// with the item change. Transactions are immutable once written.
type Transaction struct {
	// ID is the stable integer identifier assigned by the store.
	ID int64

	// ItemID references the mutated item.
	ItemID int64

	// ItemName is the item name at mutation time, carried for reporting.
	ItemName string

	// Action is the mutation kind.
	Action TransactionAction

	// Amount is the signed quantity delta applied to the item.
	Amount int

	// Timestamp is when the mutation happened.
	Timestamp time.Time
}
