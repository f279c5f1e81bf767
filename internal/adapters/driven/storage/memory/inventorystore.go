// Package memory provides in-memory implementations of the storage ports,
// used in tests and as a fallback when no database path is configured.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
)

// Ensure InventoryStore implements the interface.
var _ driven.InventoryStore = (*InventoryStore)(nil)

// InventoryStore is an in-memory implementation of driven.InventoryStore.
//
// Mutate stages writes on a deep copy of the state and swaps it in on
// success, so a failed callback leaves the store untouched.
type InventoryStore struct {
	mu     sync.RWMutex
	items  map[int64]domain.Item
	txns   []domain.Transaction
	nextID int64
	nextTx int64
	now    func() time.Time
}

// NewInventoryStore creates an empty in-memory inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		items:  make(map[int64]domain.Item),
		nextID: 1,
		nextTx: 1,
		now:    time.Now,
	}
}

// GetItem retrieves an item by ID.
func (s *InventoryStore) GetItem(_ context.Context, id int64) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// GetItemByName retrieves an item by exact name, case-insensitively.
func (s *InventoryStore) GetItemByName(_ context.Context, name string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByName(s.items, name)
}

func findByName(items map[int64]domain.Item, name string) (*domain.Item, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, item := range items {
		if strings.ToLower(item.Name) == needle {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

// ListItems returns all items ordered by name.
func (s *InventoryStore) ListItems(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sortItems(out)
	return out, nil
}

// SearchItems returns items whose name contains the query.
func (s *InventoryStore) SearchItems(_ context.Context, query string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Item
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

func sortItems(items []domain.Item) {
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// ListTransactions returns ledger entries at or after since, newest first.
func (s *InventoryStore) ListTransactions(_ context.Context, since time.Time) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, txn := range s.txns {
		if since.IsZero() || !txn.Timestamp.Before(since) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Mutate runs fn against a staged copy and commits it only on success.
func (s *InventoryStore) Mutate(_ context.Context, fn func(tx driven.MutationTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := &mutationTx{
		items:  make(map[int64]domain.Item, len(s.items)),
		txns:   append([]domain.Transaction(nil), s.txns...),
		nextID: s.nextID,
		nextTx: s.nextTx,
		now:    s.now,
	}
	for id, item := range s.items {
		staged.items[id] = item
	}

	if err := fn(staged); err != nil {
		return err
	}

	s.items = staged.items
	s.txns = staged.txns
	s.nextID = staged.nextID
	s.nextTx = staged.nextTx
	return nil
}

// Close is a no-op for the in-memory store.
func (s *InventoryStore) Close() error {
	return nil
}

// mutationTx stages writes for one Mutate call.
type mutationTx struct {
	items  map[int64]domain.Item
	txns   []domain.Transaction
	nextID int64
	nextTx int64
	now    func() time.Time
}

var _ driven.MutationTx = (*mutationTx)(nil)

// GetItemByName reads an item from the staged state.
func (t *mutationTx) GetItemByName(_ context.Context, name string) (*domain.Item, error) {
	return findByName(t.items, name)
}

// CreateItem inserts a new item, assigning its ID and timestamps.
func (t *mutationTx) CreateItem(_ context.Context, item *domain.Item) error {
	if _, err := findByName(t.items, item.Name); err == nil {
		return domain.ErrAlreadyExists
	}
	item.ID = t.nextID
	t.nextID++
	item.CreatedAt = t.now()
	item.UpdatedAt = item.CreatedAt
	t.items[item.ID] = *item
	return nil
}

// UpdateItem rewrites an existing item, refreshing UpdatedAt.
func (t *mutationTx) UpdateItem(_ context.Context, item *domain.Item) error {
	if _, ok := t.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	item.UpdatedAt = t.now()
	t.items[item.ID] = *item
	return nil
}

// DeleteItem removes an item record.
func (t *mutationTx) DeleteItem(_ context.Context, id int64) error {
	if _, ok := t.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(t.items, id)
	return nil
}

// InsertTransaction appends a ledger entry, assigning its ID.
func (t *mutationTx) InsertTransaction(_ context.Context, txn *domain.Transaction) error {
	if !txn.Action.IsValid() {
		return domain.ErrInvalidInput
	}
	txn.ID = t.nextTx
	t.nextTx++
	if txn.Timestamp.IsZero() {
		txn.Timestamp = t.now()
	}
	t.txns = append(t.txns, *txn)
	return nil
}
