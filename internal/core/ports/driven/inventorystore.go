package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
)

// InventoryStore persists items and their transaction ledger.
//
// Reads run against committed state. All writes go through Mutate so that
// a stock change and its ledger entry land atomically or not at all.
type InventoryStore interface {
	// GetItem retrieves an item by ID.
	// Returns domain.ErrItemNotFound if it doesn't exist.
	GetItem(ctx context.Context, id int64) (*domain.Item, error)

	// GetItemByName retrieves an item by exact name, case-insensitively.
	// Returns domain.ErrItemNotFound if it doesn't exist.
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)

	// ListItems returns all items ordered by name.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// SearchItems returns items whose name contains the query,
	// case-insensitively, ordered by name.
	SearchItems(ctx context.Context, query string) ([]domain.Item, error)

	// ListTransactions returns ledger entries at or after since, newest
	// first. A zero since returns the full ledger.
	ListTransactions(ctx context.Context, since time.Time) ([]domain.Transaction, error)

	// Mutate runs fn inside a single atomic unit of work. If fn returns
	// an error every staged write is discarded.
	Mutate(ctx context.Context, fn func(tx MutationTx) error) error

	// Close releases the underlying storage.
	Close() error
}

// MutationTx stages writes inside one atomic unit of work. Implementations
// are not safe for use outside the Mutate callback that produced them.
type MutationTx interface {
	// GetItemByName reads an item within the transaction.
	// Returns domain.ErrItemNotFound if it doesn't exist.
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)

	// CreateItem inserts a new item and fills in its ID and timestamps.
	// Returns domain.ErrAlreadyExists on a name collision.
	CreateItem(ctx context.Context, item *domain.Item) error

	// UpdateItem rewrites an existing item's mutable fields.
	// Returns domain.ErrItemNotFound if it doesn't exist.
	UpdateItem(ctx context.Context, item *domain.Item) error

	// DeleteItem removes an item record. The ledger keeps the item's
	// history under its recorded name.
	DeleteItem(ctx context.Context, id int64) error

	// InsertTransaction appends a ledger entry and fills in its ID.
	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
}
