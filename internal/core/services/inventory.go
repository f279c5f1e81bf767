package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/stocktalk-cli/internal/fuzzy"
	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// Ensure InventoryService implements the interface.
var _ driving.InventoryService = (*InventoryService)(nil)

// InventoryService manages stock levels and the transaction ledger. Every
// mutation pairs the item change with its ledger entry inside one store
// transaction, so the ledger always explains the current stock.
type InventoryService struct {
	store    driven.InventoryStore
	matcher  *fuzzy.Matcher
	settings domain.Settings
	now      func() time.Time
}

// NewInventoryService creates an inventory service backed by the store.
func NewInventoryService(store driven.InventoryStore, settings domain.Settings) *InventoryService {
	settings = settings.Normalised()
	return &InventoryService{
		store:    store,
		matcher:  fuzzy.NewMatcher(settings.FuzzyThreshold),
		settings: settings,
		now:      time.Now,
	}
}

// resolve finds the item a name refers to: exact case-insensitive match
// first, then the best fuzzy match above the threshold.
func (s *InventoryService) resolve(ctx context.Context, name string) (*domain.Item, error) {
	item, err := s.store.GetItemByName(ctx, name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, fmt.Errorf("resolving %q: %w", name, err)
	}

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", name, err)
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}

	match, ok := s.matcher.BestMatch(name, names)
	if !ok {
		return nil, &domain.ItemNotFoundError{Name: name}
	}
	logger.Debug("Fuzzy resolved %q -> %q (score %d)", name, match.Name, match.Score)
	return s.store.GetItemByName(ctx, match.Name)
}

// AddItem adds stock, creating the item on first mention. Resolution runs
// before creation so "add 5 apple" tops up an existing "apples" instead of
// forking a duplicate.
func (s *InventoryService) AddItem(ctx context.Context, name string, quantity int, price *decimal.Decimal, category string) (*domain.Item, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "quantity must be positive"}
	}
	if price != nil && price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Reason: "price cannot be negative"}
	}

	existing, err := s.resolve(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}

	var result *domain.Item
	mutate := func(tx driven.MutationTx) error {
		if existing == nil {
			item := &domain.Item{
				Name:     name,
				Category: category,
				Quantity: quantity,
			}
			if item.Category == "" {
				item.Category = s.settings.DefaultCategory
			}
			if price != nil {
				item.UnitPrice = *price
			}
			if err := tx.CreateItem(ctx, item); err != nil {
				return err
			}
			result = item
			return tx.InsertTransaction(ctx, &domain.Transaction{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Action:    domain.ActionAdd,
				Amount:    quantity,
				Timestamp: s.now(),
			})
		}

		item, err := tx.GetItemByName(ctx, existing.Name)
		if err != nil {
			return err
		}
		item.Quantity += quantity
		if price != nil {
			item.UnitPrice = *price
		}
		if category != "" {
			item.Category = category
		}
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}
		result = item
		return tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Action:    domain.ActionAdd,
			Amount:    quantity,
			Timestamp: s.now(),
		})
	}

	if err := s.store.Mutate(ctx, mutate); err != nil {
		return nil, fmt.Errorf("adding %q: %w", name, err)
	}
	logger.Info("Added %d %s (stock %d)", quantity, result.Name, result.Quantity)
	return result, nil
}

// AdjustStock applies a signed delta to an existing item.
func (s *InventoryService) AdjustStock(ctx context.Context, name string, delta int) (*domain.Item, error) {
	item, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if delta == 0 {
		return item, nil
	}
	if item.Quantity+delta < 0 {
		return nil, &domain.InsufficientStockError{
			Name:      item.Name,
			Available: item.Quantity,
			Requested: -delta,
		}
	}
	return s.applyDelta(ctx, item.Name, delta)
}

// SetStock moves an existing item to an absolute quantity, recording the
// difference in the ledger.
func (s *InventoryService) SetStock(ctx context.Context, name string, quantity int) (*domain.Item, error) {
	if quantity < 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "stock level cannot be negative"}
	}
	item, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	delta := quantity - item.Quantity
	if delta == 0 {
		return item, nil
	}
	return s.applyDelta(ctx, item.Name, delta)
}

// applyDelta rewrites the quantity and appends the matching ledger entry.
// The item is re-read inside the transaction so concurrent writers cannot
// interleave between resolution and update.
func (s *InventoryService) applyDelta(ctx context.Context, exactName string, delta int) (*domain.Item, error) {
	var result *domain.Item
	err := s.store.Mutate(ctx, func(tx driven.MutationTx) error {
		item, err := tx.GetItemByName(ctx, exactName)
		if err != nil {
			return err
		}
		if item.Quantity+delta < 0 {
			return &domain.InsufficientStockError{
				Name:      item.Name,
				Available: item.Quantity,
				Requested: -delta,
			}
		}
		item.Quantity += delta
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}
		result = item
		return tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Action:    domain.ActionUpdate,
			Amount:    delta,
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	if result.Quantity <= s.settings.LowStockThreshold {
		logger.Warn("%s is low on stock (%d left)", result.Name, result.Quantity)
	}
	return result, nil
}

// RemoveItem removes stock or, without a quantity, the item itself. The
// record survives at zero stock; only a quantity-less remove deletes it.
func (s *InventoryService) RemoveItem(ctx context.Context, name string, quantity *int) (removed, remaining int, err error) {
	item, err := s.resolve(ctx, name)
	if err != nil {
		return 0, 0, err
	}

	if quantity == nil {
		err = s.store.Mutate(ctx, func(tx driven.MutationTx) error {
			current, err := tx.GetItemByName(ctx, item.Name)
			if err != nil {
				return err
			}
			if err := tx.InsertTransaction(ctx, &domain.Transaction{
				ItemID:    current.ID,
				ItemName:  current.Name,
				Action:    domain.ActionDelete,
				Amount:    -current.Quantity,
				Timestamp: s.now(),
			}); err != nil {
				return err
			}
			removed = current.Quantity
			return tx.DeleteItem(ctx, current.ID)
		})
		if err != nil {
			return 0, 0, fmt.Errorf("deleting %q: %w", item.Name, err)
		}
		logger.Info("Deleted %s", item.Name)
		return removed, 0, nil
	}

	q := *quantity
	if q <= 0 {
		return 0, 0, &domain.ValidationError{Field: "quantity", Reason: "quantity must be positive"}
	}
	if q > item.Quantity {
		return 0, 0, &domain.InsufficientStockError{
			Name:      item.Name,
			Available: item.Quantity,
			Requested: q,
		}
	}

	var result *domain.Item
	err = s.store.Mutate(ctx, func(tx driven.MutationTx) error {
		current, err := tx.GetItemByName(ctx, item.Name)
		if err != nil {
			return err
		}
		if q > current.Quantity {
			return &domain.InsufficientStockError{
				Name:      current.Name,
				Available: current.Quantity,
				Requested: q,
			}
		}
		current.Quantity -= q
		if err := tx.UpdateItem(ctx, current); err != nil {
			return err
		}
		result = current
		return tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:    current.ID,
			ItemName:  current.Name,
			Action:    domain.ActionRemove,
			Amount:    -q,
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return 0, 0, err
	}
	if result.Quantity <= s.settings.LowStockThreshold {
		logger.Warn("%s is low on stock (%d left)", result.Name, result.Quantity)
	}
	return q, result.Quantity, nil
}

// GetItem resolves a name to an item.
func (s *InventoryService) GetItem(ctx context.Context, name string) (*domain.Item, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	return s.resolve(ctx, name)
}

// GetAllItems returns every item ordered by name.
func (s *InventoryService) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	return s.store.ListItems(ctx)
}

// SearchItems returns substring matches first, then fuzzy matches that the
// substring search missed, each group ordered by name.
func (s *InventoryService) SearchItems(ctx context.Context, query string) ([]domain.Item, error) {
	subs, err := s.store.SearchItems(ctx, query)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool, len(subs))
	for _, it := range subs {
		seen[it.ID] = true
	}

	all, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]domain.Item, len(all))
	var names []string
	for _, it := range all {
		if seen[it.ID] {
			continue
		}
		byName[it.Name] = it
		names = append(names, it.Name)
	}

	out := subs
	for _, m := range s.matcher.Matches(query, names, 0) {
		out = append(out, byName[m.Name])
	}
	return out, nil
}
