package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stocktalk-cli/internal/core/domain"
	"github.com/custodia-labs/stocktalk-cli/internal/core/ports/driven"
)

func seedItem(t *testing.T, store *InventoryStore, name string, quantity int) *domain.Item {
	t.Helper()
	item := &domain.Item{
		Name:      name,
		Category:  domain.DefaultCategory,
		Quantity:  quantity,
		UnitPrice: decimal.NewFromFloat(1.50),
	}
	err := store.Mutate(context.Background(), func(tx driven.MutationTx) error {
		return tx.CreateItem(context.Background(), item)
	})
	require.NoError(t, err)
	return item
}

func TestCreateAndGet(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()

	item := seedItem(t, store, "apples", 10)
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "apples", got.Name)
	assert.Equal(t, 10, got.Quantity)
}

func TestGetItemByNameIsCaseInsensitive(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	seedItem(t, store, "Apples", 10)

	got, err := store.GetItemByName(ctx, "apples")
	require.NoError(t, err)
	assert.Equal(t, "Apples", got.Name)

	_, err = store.GetItemByName(ctx, "bananas")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreateRejectsDuplicateNames(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	seedItem(t, store, "apples", 10)

	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		return tx.CreateItem(ctx, &domain.Item{Name: "APPLES", Quantity: 1})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestListItemsOrderedByName(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	seedItem(t, store, "bananas", 2)
	seedItem(t, store, "Apples", 1)
	seedItem(t, store, "cherries", 3)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Apples", items[0].Name)
	assert.Equal(t, "bananas", items[1].Name)
	assert.Equal(t, "cherries", items[2].Name)
}

func TestSearchItems(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	seedItem(t, store, "green apples", 1)
	seedItem(t, store, "red apples", 2)
	seedItem(t, store, "bananas", 3)

	items, err := store.SearchItems(ctx, "apple")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "green apples", items[0].Name)
}

func TestMutateRollsBackOnError(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	item := seedItem(t, store, "apples", 10)

	boom := errors.New("boom")
	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		staged, err := tx.GetItemByName(ctx, "apples")
		require.NoError(t, err)
		staged.Quantity = 0
		require.NoError(t, tx.UpdateItem(ctx, staged))
		require.NoError(t, tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:   staged.ID,
			ItemName: staged.Name,
			Action:   domain.ActionUpdate,
			Amount:   -10,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	txns, err := store.ListTransactions(ctx, time.Time{})
	require.NoError(t, err)
	// seedItem writes no ledger entry and the staged one was discarded.
	assert.Empty(t, txns)
}

func TestDeleteItemKeepsLedger(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	item := seedItem(t, store, "apples", 10)

	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		if err := tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:   item.ID,
			ItemName: item.Name,
			Action:   domain.ActionDelete,
			Amount:   -10,
		}); err != nil {
			return err
		}
		return tx.DeleteItem(ctx, item.ID)
	})
	require.NoError(t, err)

	_, err = store.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	txns, err := store.ListTransactions(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "apples", txns[0].ItemName)
	assert.Equal(t, domain.ActionDelete, txns[0].Action)
}

func TestListTransactionsWindowAndOrder(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	item := seedItem(t, store, "apples", 10)

	base := time.Now()
	stamps := []time.Time{base.Add(-48 * time.Hour), base.Add(-2 * time.Hour), base.Add(-time.Minute)}
	for i, ts := range stamps {
		err := store.Mutate(ctx, func(tx driven.MutationTx) error {
			return tx.InsertTransaction(ctx, &domain.Transaction{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Action:    domain.ActionAdd,
				Amount:    i + 1,
				Timestamp: ts,
			})
		})
		require.NoError(t, err)
	}

	all, err := store.ListTransactions(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Amount)

	windowed, err := store.ListTransactions(ctx, base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, windowed, 2)
	assert.Equal(t, 3, windowed[0].Amount)
	assert.Equal(t, 2, windowed[1].Amount)
}

func TestInsertTransactionRejectsUnknownAction(t *testing.T) {
	store := NewInventoryStore()
	ctx := context.Background()
	item := seedItem(t, store, "apples", 10)

	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		return tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:   item.ID,
			ItemName: item.Name,
			Action:   "explode",
		})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
