package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soeta/internal/domain"
	"soeta/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestOrderItemRepository_BulkInsert_EmptySetNoOp(t *testing.T) {
	repo := NewMySQLOrderItemRepository(&sql.DB{})

	// No statement is issued, so a nil tx is never touched.
	err := repo.BulkInsert(context.Background(), nil, nil)
	assert.NoError(t, err)
}

// Integration Tests

func setupOrder(t *testing.T, db *sql.DB, fullName string) uint {
	t.Helper()

	orderRepo := NewMySQLOrderRepository(db)
	return insertOrder(t, db, orderRepo, domain.Order{FullName: fullName})
}

func TestOrderItemRepository_BulkInsertAndFindByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)
	orderID := setupOrder(t, db, "Budi Santoso")

	tx, err := db.Begin()
	require.NoError(t, err)
	err = repo.BulkInsert(context.Background(), tx, []domain.OrderItem{
		{OrderID: orderID, Size: domain.SizeM, SleeveType: domain.SleeveShort, Quantity: 2},
		{OrderID: orderID, Size: domain.SizeXL, SleeveType: domain.SleeveShort, Quantity: 1},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.SizeM, items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, domain.SleeveShort, items[0].SleeveType)
	assert.Equal(t, domain.SizeXL, items[1].Size)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestOrderItemRepository_DeleteByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)
	orderID := setupOrder(t, db, "Budi Santoso")
	otherID := setupOrder(t, db, "Siti Aminah")

	tx, err := db.Begin()
	require.NoError(t, err)
	err = repo.BulkInsert(context.Background(), tx, []domain.OrderItem{
		{OrderID: orderID, Size: domain.SizeS, SleeveType: domain.SleeveLong, Quantity: 3},
		{OrderID: otherID, Size: domain.SizeM, SleeveType: domain.SleeveLong, Quantity: 1},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx, err = db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByOrderID(context.Background(), tx, orderID))
	require.NoError(t, tx.Commit())

	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// The other order's items are untouched.
	items, err = repo.FindByOrderID(context.Background(), otherID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOrderItemRepository_FindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)
	firstID := setupOrder(t, db, "Budi Santoso")
	secondID := setupOrder(t, db, "Siti Aminah")

	tx, err := db.Begin()
	require.NoError(t, err)
	err = repo.BulkInsert(context.Background(), tx, []domain.OrderItem{
		{OrderID: secondID, Size: domain.SizeS, SleeveType: domain.SleeveShort, Quantity: 1},
		{OrderID: firstID, Size: domain.SizeM, SleeveType: domain.SleeveShort, Quantity: 2},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, firstID, items[0].OrderID)
	assert.Equal(t, secondID, items[1].OrderID)
}
