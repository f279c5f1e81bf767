package driving

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

// InventoryService manages stock levels and the transaction ledger.
//
// Name arguments are resolved against existing items: an exact
// case-insensitive match first, then a fuzzy match. Mutations atomically
// pair the stock change with its ledger entry.
type InventoryService interface {
	// AddItem adds quantity to an item, creating it on first mention.
	// A nil price leaves the stored price untouched (zero for new items),
	// and an empty category falls back to the default for new items.
	AddItem(ctx context.Context, name string, quantity int, price *decimal.Decimal, category string) (*domain.Item, error)

	// AdjustStock applies a signed delta to an existing item's quantity.
	// Returns domain.ErrInsufficientStock when the delta would push the
	// quantity below zero.
	AdjustStock(ctx context.Context, name string, delta int) (*domain.Item, error)

	// SetStock sets an existing item's quantity to an absolute level,
	// recording the difference in the ledger.
	SetStock(ctx context.Context, name string, quantity int) (*domain.Item, error)

	// RemoveItem removes stock. With a quantity it decrements, deleting
	// nothing; the item record stays even at zero. Without a quantity it
	// deletes the item outright. Returns the removed amount and the
	// remaining quantity.
	RemoveItem(ctx context.Context, name string, quantity *int) (removed, remaining int, err error)

	// GetItem resolves a name to an item.
	GetItem(ctx context.Context, name string) (*domain.Item, error)

	// GetAllItems returns every item ordered by name.
	GetAllItems(ctx context.Context) ([]domain.Item, error)

	// SearchItems returns items matching the query, substring matches
	// ranked above fuzzy ones.
	SearchItems(ctx context.Context, query string) ([]domain.Item, error)
}
