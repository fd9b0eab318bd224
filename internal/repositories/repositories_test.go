package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"store_expiry_backend/internal/database"
	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutil.TerminateShared()
	os.Exit(code)
}

// newTestDB returns a migrated database holding two stores, S001 and S002.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := testutil.OpenDB(t)
	ctx := context.Background()
	require.NoError(t, database.ApplySchema(ctx, db))
	_, err := db.ExecContext(ctx, `INSERT INTO stores (store_code, store_name) VALUES ('S001', 'Almaty'), ('S002', 'Astana')`)
	require.NoError(t, err)
	return db
}

func mustCreateStaff(t *testing.T, db *sql.DB, staff models.Staff, code string, createdAt int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, NewStaffRepository(db).CreateStaff(ctx, db, &staff))
	if code != "" {
		require.NoError(t, NewAccessCodeRepository(db).CreateAccessCode(ctx, db, &models.AccessCode{Code: code, StaffID: staff.StaffID, CreatedAt: createdAt}))
	}
}

func strPtr(s string) *string { return &s }

func TestStaffRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewStaffRepository(db)

	mustCreateStaff(t, db, models.Staff{StaffID: "staff_b", Name: "Bolat", StoreID: "S002"}, "", 0)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "", 0)

	got, err := repo.GetStaffByID(ctx, "staff_a")
	require.NoError(t, err)
	assert.Equal(t, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, *got)

	exists, err := repo.StaffExists(ctx, "staff_a")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.StaffExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := repo.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aigerim", list[0].Name)
	assert.Equal(t, "Bolat", list[1].Name)

	_, err = repo.GetStaffByID(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaffRepository_DuplicateID(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)
	mustCreateStaff(t, db, models.Staff{StaffID: "jdoe", Name: "John", StoreID: "S001"}, "", 0)

	err := repo.CreateStaff(context.Background(), db, &models.Staff{StaffID: "jdoe", Name: "Other", StoreID: "S002"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, ConstraintStaffPKey, ConstraintOf(err))
}

func TestStaffRepository_UnknownStore(t *testing.T) {
	db := newTestDB(t)

	err := NewStaffRepository(db).CreateStaff(context.Background(), db, &models.Staff{StaffID: "x", Name: "X", StoreID: "S999"})
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestAccessCodeRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAccessCodeRepository(db)

	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "OLDCODE1", 100)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_b", Name: "Bolat", StoreID: "S002"}, "NEWCODE2", 200)

	code, err := repo.GetAccessCode(ctx, "OLDCODE1")
	require.NoError(t, err)
	assert.Equal(t, models.AccessCode{Code: "OLDCODE1", StaffID: "staff_a", CreatedAt: 100}, *code)

	_, err = repo.GetAccessCode(ctx, "oldcode1")
	assert.ErrorIs(t, err, ErrNotFound)

	codes, err := repo.ListAccessCodes(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "NEWCODE2", codes[0].Code)

	require.NoError(t, repo.DeleteAccessCode(ctx, db, "NEWCODE2"))
	assert.ErrorIs(t, repo.DeleteAccessCode(ctx, db, "NEWCODE2"), ErrNotFound)
}

func TestDeleteStaff_CascadesAccessCodes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "CODE0001", 1)

	require.NoError(t, NewStaffRepository(db).DeleteStaff(ctx, db, "staff_a"))

	_, err := NewAccessCodeRepository(db).GetAccessCode(ctx, "CODE0001")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, NewStaffRepository(db).DeleteStaff(ctx, db, "staff_a"), ErrNotFound)
}

func TestDeleteStaff_BlockedByItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "", 0)
	_, err := NewItemRepository(db).CreateItem(ctx, db, &models.Item{
		ItemID: "item_1", Name: "Milk", ExpirationDate: "2025-01-10", Quantity: 1, AddedByStaffID: "staff_a", StoreCode: "S001",
	})
	require.NoError(t, err)

	err = NewStaffRepository(db).DeleteStaff(ctx, db, "staff_a")
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestTransactor_RollsBackStaffWhenCodeFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	staffRepo := NewStaffRepository(db)
	codeRepo := NewAccessCodeRepository(db)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "TAKEN001", 1)

	err := NewTransactor(db).WithinTx(ctx, func(exec SQLExecutor) error {
		if err := staffRepo.CreateStaff(ctx, exec, &models.Staff{StaffID: "staff_b", Name: "Bolat", StoreID: "S002"}); err != nil {
			return err
		}
		return codeRepo.CreateAccessCode(ctx, exec, &models.AccessCode{Code: "TAKEN001", StaffID: "staff_b", CreatedAt: 2})
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, ConstraintAccessCodesPKey, ConstraintOf(err))

	exists, err := staffRepo.StaffExists(ctx, "staff_b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactor_CommitsBoth(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	staffRepo := NewStaffRepository(db)
	codeRepo := NewAccessCodeRepository(db)

	err := NewTransactor(db).WithinTx(ctx, func(exec SQLExecutor) error {
		if err := staffRepo.CreateStaff(ctx, exec, &models.Staff{StaffID: "staff_c", Name: "Chingiz", StoreID: "S001"}); err != nil {
			return err
		}
		return codeRepo.CreateAccessCode(ctx, exec, &models.AccessCode{Code: "FRESH001", StaffID: "staff_c", CreatedAt: 3})
	})
	require.NoError(t, err)

	code, err := codeRepo.GetAccessCode(ctx, "FRESH001")
	require.NoError(t, err)
	assert.Equal(t, "staff_c", code.StaffID)
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	staffRepo := NewStaffRepository(db)

	assert.Panics(t, func() {
		_ = NewTransactor(db).WithinTx(ctx, func(exec SQLExecutor) error {
			require.NoError(t, staffRepo.CreateStaff(ctx, exec, &models.Staff{StaffID: "staff_p", Name: "P", StoreID: "S001"}))
			panic("boom")
		})
	})

	exists, err := staffRepo.StaffExists(ctx, "staff_p")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestItemRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "", 0)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_b", Name: "Bolat", StoreID: "S002"}, "", 0)

	created, err := repo.CreateItem(ctx, db, &models.Item{
		ItemID: "item_2", Name: "Yogurt", Category: strPtr("Dairy"), ExpirationDate: "2025-03-01",
		Quantity: 2, AddedByStaffID: "staff_a", StoreCode: "S001",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", created.ExpirationDate)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Dairy", *created.Category)
	assert.Nil(t, created.ImageURL)

	for _, it := range []models.Item{
		{ItemID: "item_1", Name: "Milk", ExpirationDate: "2025-01-10", Quantity: 5, AddedByStaffID: "staff_a", StoreCode: "S001"},
		{ItemID: "item_3", Name: "Bread", ExpirationDate: "2025-01-05", Quantity: 1, AddedByStaffID: "staff_b", StoreCode: "S002"},
	} {
		it := it
		_, err := repo.CreateItem(ctx, db, &it)
		require.NoError(t, err)
	}

	all, err := repo.ListItems(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"item_3", "item_1", "item_2"}, ids(all))

	s001, err := repo.ListItems(ctx, strPtr("S001"))
	require.NoError(t, err)
	assert.Equal(t, []string{"item_1", "item_2"}, ids(s001))

	created.Quantity = 7
	created.Name = "Greek Yogurt"
	updated, err := repo.UpdateItem(ctx, db, created)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "Greek Yogurt", updated.Name)

	require.NoError(t, repo.DeleteItem(ctx, db, "item_2"))
	_, err = repo.GetItemByID(ctx, "item_2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteItem(ctx, db, "item_2"), ErrNotFound)
	_, err = repo.UpdateItem(ctx, db, created)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRepository_UnknownReferences(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewItemRepository(db)
	mustCreateStaff(t, db, models.Staff{StaffID: "staff_a", Name: "Aigerim", StoreID: "S001"}, "", 0)

	_, err := repo.CreateItem(ctx, db, &models.Item{ItemID: "i1", Name: "x", ExpirationDate: "2025-01-01", Quantity: 1, AddedByStaffID: "ghost", StoreCode: "S001"})
	assert.True(t, errors.Is(err, ErrForeignKey))

	_, err = repo.CreateItem(ctx, db, &models.Item{ItemID: "i2", Name: "x", ExpirationDate: "2025-01-01", Quantity: 1, AddedByStaffID: "staff_a", StoreCode: "S999"})
	assert.True(t, errors.Is(err, ErrForeignKey))
}

func TestStoreRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewStoreRepository(db)

	stores, err := repo.ListStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Store{{Code: "S001", Name: "Almaty"}, {Code: "S002", Name: "Astana"}}, stores)
}

func ids(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ItemID)
	}
	return out
}
