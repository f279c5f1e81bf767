package contextmem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndLast(t *testing.T) {
	m := New(DefaultSize)

	_, ok := m.LastItemName()
	assert.False(t, ok)

	m.Record("apples", "add_item")
	m.Record("bananas", "query")

	name, ok := m.LastItemName()
	require.True(t, ok)
	assert.Equal(t, "bananas", name)
	assert.Equal(t, 2, m.Len())
}

func TestRecordIgnoresEmptyNames(t *testing.T) {
	m := New(DefaultSize)
	m.Record("", "query")
	assert.Zero(t, m.Len())
}

func TestEviction(t *testing.T) {
	m := New(3)
	for i := 0; i < 5; i++ {
		m.Record(fmt.Sprintf("item-%d", i), "add_item")
	}

	assert.Equal(t, 3, m.Len())

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "item-4", entries[0].ItemName)
	assert.Equal(t, "item-2", entries[2].ItemName)
}

func TestEntriesNewestFirst(t *testing.T) {
	m := New(DefaultSize)
	m.Record("first", "add_item")
	m.Record("second", "update_stock")

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].ItemName)
	assert.Equal(t, "update_stock", entries[0].Intent)
	assert.Equal(t, "first", entries[1].ItemName)
}

func TestClear(t *testing.T) {
	m := New(DefaultSize)
	m.Record("apples", "add_item")
	m.Clear()

	assert.Zero(t, m.Len())
	_, ok := m.LastItemName()
	assert.False(t, ok)
}

func TestNewClampsSize(t *testing.T) {
	m := New(0)
	for i := 0; i < DefaultSize+2; i++ {
		m.Record(fmt.Sprintf("item-%d", i), "add_item")
	}
	assert.Equal(t, DefaultSize, m.Len())
}
