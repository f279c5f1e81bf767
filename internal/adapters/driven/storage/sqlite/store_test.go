package sqlite

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

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createItem(t *testing.T, store *Store, name string, quantity int, price string) *domain.Item {
	t.Helper()
	item := &domain.Item{
		Name:      name,
		Category:  domain.DefaultCategory,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(price),
	}
	err := store.Mutate(context.Background(), func(tx driven.MutationTx) error {
		return tx.CreateItem(context.Background(), item)
	})
	require.NoError(t, err)
	return item
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs the migration check again against the same file.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestCreateAndGetItem(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	item := createItem(t, store, "apples", 10, "1.50")
	require.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "apples", got.Name)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, got.UnitPrice.Equal(decimal.RequireFromString("1.50")))
}

func TestGetItemByNameIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	createItem(t, store, "Apples", 10, "0")

	got, err := store.GetItemByName(ctx, "apples")
	require.NoError(t, err)
	assert.Equal(t, "Apples", got.Name)

	_, err = store.GetItemByName(ctx, "bananas")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreateItemRejectsDuplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	createItem(t, store, "apples", 10, "0")

	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		return tx.CreateItem(ctx, &domain.Item{Name: "APPLES"})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestListAndSearchItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	createItem(t, store, "bananas", 3, "0")
	createItem(t, store, "apples", 10, "0")
	createItem(t, store, "green apples", 4, "0")

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "apples", items[0].Name)

	found, err := store.SearchItems(ctx, "apple")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "apples", found[0].Name)
	assert.Equal(t, "green apples", found[1].Name)
}

func TestMutateRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	item := createItem(t, store, "apples", 10, "0")

	boom := errors.New("boom")
	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		staged, err := tx.GetItemByName(ctx, "apples")
		if err != nil {
			return err
		}
		staged.Quantity = 0
		if err := tx.UpdateItem(ctx, staged); err != nil {
			return err
		}
		if err := tx.InsertTransaction(ctx, &domain.Transaction{
			ItemID:   staged.ID,
			ItemName: staged.Name,
			Action:   domain.ActionUpdate,
			Amount:   -10,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	txns, err := store.ListTransactions(ctx, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestUpdateAndDeleteMissingItem(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Mutate(ctx, func(tx driven.MutationTx) error {
		return tx.UpdateItem(ctx, &domain.Item{ID: 999, Name: "ghost"})
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	err = store.Mutate(ctx, func(tx driven.MutationTx) error {
		return tx.DeleteItem(ctx, 999)
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestLedgerSurvivesItemDeletion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	item := createItem(t, store, "apples", 10, "0")

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

	txns, err := store.ListTransactions(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "apples", txns[0].ItemName)
	assert.Equal(t, domain.ActionDelete, txns[0].Action)
	assert.Equal(t, -10, txns[0].Amount)
}

func TestListTransactionsWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	item := createItem(t, store, "apples", 10, "0")

	now := time.Now().UTC()
	stamps := []time.Time{now.Add(-48 * time.Hour), now.Add(-time.Hour), now.Add(-time.Minute)}
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
	assert.Equal(t, 1, all[2].Amount)

	windowed, err := store.ListTransactions(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, windowed, 2)
	assert.Equal(t, 3, windowed[0].Amount)
}
