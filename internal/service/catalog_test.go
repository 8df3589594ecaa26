package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/india-resources/directory-api/internal/db"
)

func TestCreateAndGetItem(t *testing.T) {
	conn := setupTestDB(t)

	item, err := CreateItem(conn, urlFields("Government of India", "https://www.india.gov.in"))
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	got, err := GetItemByID(conn, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Government of India", got.Name)
	assert.Equal(t, db.KindURL, got.Kind)
}

func TestCreateItemValidation(t *testing.T) {
	conn := setupTestDB(t)

	_, err := CreateItem(conn, db.ItemFields{Kind: "bogus", Name: "x"})
	assert.Error(t, err)

	_, err = CreateItem(conn, db.ItemFields{Kind: db.KindURL})
	assert.Error(t, err)
}

func TestGetItemNotFound(t *testing.T) {
	conn := setupTestDB(t)

	_, err := GetItemByID(conn, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListItemsFilters(t *testing.T) {
	conn := setupTestDB(t)

	a := urlFields("Government of India", "https://www.india.gov.in")
	a.Category = "Central Government"
	b := urlFields("Digital India", "https://digitalindia.gov.in")
	b.Category = "Digital Services"
	b.Description = "Digital India initiative portal"
	c := urlFields("Kerala Portal", "https://kerala.gov.in")
	c.State = "Kerala"
	for _, fields := range []db.ItemFields{a, b, c} {
		_, err := CreateItem(conn, fields)
		require.NoError(t, err)
	}
	_, err := CreateItem(conn, contactFields("Police Emergency", "100"))
	require.NoError(t, err)

	// Kind partitions the catalog.
	items, total, err := ListItems(conn, ListOptions{Kind: db.KindURL})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 3)
	// Insertion order.
	assert.Equal(t, "Government of India", items[0].Name)

	items, total, err = ListItems(conn, ListOptions{Kind: db.KindContact})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Substring search on name and description.
	items, _, err = ListItems(conn, ListOptions{Kind: db.KindURL, Query: "initiative"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Digital India", items[0].Name)

	// Exact category match.
	items, _, err = ListItems(conn, ListOptions{Kind: db.KindURL, Category: "Central Government"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Government of India", items[0].Name)

	// Exact state match.
	items, _, err = ListItems(conn, ListOptions{Kind: db.KindURL, State: "Kerala"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kerala Portal", items[0].Name)
}

func TestListItemsPagination(t *testing.T) {
	conn := setupTestDB(t)

	for i := 0; i < 5; i++ {
		_, err := CreateItem(conn, urlFields("Portal", "https://example.in"))
		require.NoError(t, err)
	}

	items, total, err := ListItems(conn, ListOptions{Kind: db.KindURL, Page: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 2)

	items, _, err = ListItems(conn, ListOptions{Kind: db.KindURL, Page: 3, Size: 2})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateItemPatch(t *testing.T) {
	conn := setupTestDB(t)

	item, err := CreateItem(conn, urlFields("Old Name", "https://old.example.in"))
	require.NoError(t, err)

	newName := "New Name"
	updated, err := UpdateItem(conn, item.ID, ItemPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	// Untouched fields survive the patch.
	got, err := GetItemByID(conn, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "https://old.example.in", got.URL)
	assert.Equal(t, "Public Services", got.Category)
}

func TestUpdateItemNotFound(t *testing.T) {
	conn := setupTestDB(t)

	name := "x"
	_, err := UpdateItem(conn, 999, ItemPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	conn := setupTestDB(t)

	item, err := CreateItem(conn, urlFields("Portal", "https://example.in"))
	require.NoError(t, err)

	require.NoError(t, DeleteItem(conn, item.ID))

	_, err = GetItemByID(conn, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItemNotFound(t *testing.T) {
	conn := setupTestDB(t)

	item, err := CreateItem(conn, urlFields("Portal", "https://example.in"))
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteItem(conn, 999), ErrNotFound)

	// The catalog is unchanged by the failed delete.
	_, total, err := ListItems(conn, ListOptions{Kind: db.KindURL})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	_, err = GetItemByID(conn, item.ID)
	assert.NoError(t, err)
}
