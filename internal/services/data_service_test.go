package services

import (
	"context"
	"fmt"
	"testing"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDataService() (DataService, *fakeItemRepo) {
	items := newFakeItemRepo(
		models.Item{ItemID: "item_3", Name: "Yogurt", ExpirationDate: "2025-03-01", Quantity: 2, StoreCode: "S001"},
		models.Item{ItemID: "item_1", Name: "Milk", ExpirationDate: "2025-01-10", Quantity: 5, StoreCode: "S001"},
		models.Item{ItemID: "item_2", Name: "Bread", ExpirationDate: "2025-01-05", Quantity: 1, StoreCode: "S002"},
	)
	staff := newFakeStaffRepo(
		models.Staff{StaffID: "staff_1", Name: "Aigerim", StoreID: "S001"},
		models.Staff{StaffID: "staff_2", Name: "Bolat", StoreID: "S002"},
	)
	codes := newFakeCodeRepo(
		models.AccessCode{Code: "AAAA1111", StaffID: "staff_1", CreatedAt: 10},
		models.AccessCode{Code: "BBBB2222", StaffID: "staff_2", CreatedAt: 20},
	)
	stores := &fakeStoreRepo{stores: []models.Store{{Code: "S001", Name: "Almaty"}, {Code: "S002", Name: "Astana"}}}
	return NewDataService(items, staff, codes, stores), items
}

func TestGetAllData(t *testing.T) {
	svc, items := seededDataService()

	snap, err := svc.GetAllData(context.Background())
	require.NoError(t, err)

	assert.Nil(t, items.lastFilter)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, []string{"item_2", "item_1", "item_3"}, itemIDs(snap.Items))
	assert.Len(t, snap.Staff, 2)
	assert.Equal(t, "BBBB2222", snap.AccessCodes[0].Code)
	assert.Len(t, snap.Stores, 2)
}

func TestGetStoreData_FiltersOnlyItems(t *testing.T) {
	svc, items := seededDataService()

	snap, err := svc.GetStoreData(context.Background(), "S001")
	require.NoError(t, err)

	require.NotNil(t, items.lastFilter)
	assert.Equal(t, "S001", *items.lastFilter)
	assert.Equal(t, []string{"item_1", "item_3"}, itemIDs(snap.Items))
	for _, it := range snap.Items {
		assert.Equal(t, "S001", it.StoreCode)
	}
	// Staff, codes and stores are chain-wide.
	assert.Len(t, snap.Staff, 2)
	assert.Len(t, snap.AccessCodes, 2)
	assert.Len(t, snap.Stores, 2)
}

func TestGetStoreData_RequiresStoreCode(t *testing.T) {
	svc, _ := seededDataService()

	_, err := svc.GetStoreData(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrStoreCodeRequired)
}

func TestGetStoreData_EmptyListsAreNotNil(t *testing.T) {
	svc := NewDataService(newFakeItemRepo(), newFakeStaffRepo(), newFakeCodeRepo(), &fakeStoreRepo{})

	snap, err := svc.GetStoreData(context.Background(), "S404")
	require.NoError(t, err)
	assert.NotNil(t, snap.Items)
	assert.NotNil(t, snap.Staff)
	assert.NotNil(t, snap.AccessCodes)
	assert.NotNil(t, snap.Stores)
}

func TestGetAllData_PropagatesFirstError(t *testing.T) {
	items := newFakeItemRepo()
	items.listErr = fmt.Errorf("%w: connection reset", repositories.ErrDatabaseError)
	svc := NewDataService(items, newFakeStaffRepo(), newFakeCodeRepo(), &fakeStoreRepo{})

	_, err := svc.GetAllData(context.Background())
	assert.ErrorIs(t, err, repositories.ErrDatabaseError)
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ItemID)
	}
	return ids
}
