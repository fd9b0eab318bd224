package repositories

import (
	"context"
	"database/sql"

	"store_expiry_backend/internal/models"
)

// StoreRepository reads the seeded store directory.
type StoreRepository interface {
	ListStores(ctx context.Context) ([]models.Store, error)
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new instance of StoreRepository.
func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) ListStores(ctx context.Context) ([]models.Store, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT store_code, store_name FROM stores ORDER BY store_name ASC`)
	if err != nil {
		return nil, classifyError(err, "querying stores")
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, classifyError(err, "scanning store")
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "iterating store rows")
	}
	return stores, nil
}
