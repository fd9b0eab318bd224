package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"store_expiry_backend/internal/models"
)

// ItemRepository defines the database operations on logged items.
type ItemRepository interface {
	CreateItem(ctx context.Context, executor SQLExecutor, item *models.Item) (*models.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*models.Item, error)
	// ListItems returns items by expiration date, soonest first. A nil storeCode lists every store.
	ListItems(ctx context.Context, storeCode *string) ([]models.Item, error)
	UpdateItem(ctx context.Context, executor SQLExecutor, item *models.Item) (*models.Item, error)
	DeleteItem(ctx context.Context, executor SQLExecutor, itemID string) error
}

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `item_id, name, category, expiration_date, quantity, image_url, added_by_staff_id, store_code`

func scanItemRow(row scanner) (*models.Item, error) {
	var item models.Item
	var category, imageURL, addedBy, storeCode sql.NullString
	var expiration time.Time

	err := row.Scan(&item.ItemID, &item.Name, &category, &expiration, &item.Quantity,
		&imageURL, &addedBy, &storeCode)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		item.Category = &category.String
	}
	if imageURL.Valid {
		item.ImageURL = &imageURL.String
	}
	item.ExpirationDate = expiration.Format(models.DateLayout)
	item.AddedByStaffID = addedBy.String
	item.StoreCode = storeCode.String
	return &item, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, executor SQLExecutor, item *models.Item) (*models.Item, error) {
	query := `INSERT INTO items (` + itemColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING ` + itemColumns

	created, err := scanItemRow(executor.QueryRowContext(ctx, query,
		item.ItemID, item.Name, item.Category, item.ExpirationDate, item.Quantity,
		item.ImageURL, item.AddedByStaffID, item.StoreCode,
	))
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("creating item %q", item.ItemID))
	}
	return created, nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, itemID string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`
	item, err := scanItemRow(r.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("getting item %q", itemID))
	}
	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, storeCode *string) ([]models.Item, error) {
	var queryBuilder strings.Builder
	var args []interface{}

	queryBuilder.WriteString(`SELECT ` + itemColumns + ` FROM items`)
	if storeCode != nil {
		queryBuilder.WriteString(` WHERE store_code = $1`)
		args = append(args, *storeCode)
	}
	queryBuilder.WriteString(` ORDER BY expiration_date ASC, item_id ASC`)

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, classifyError(err, "querying items")
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, classifyError(err, "scanning item")
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "iterating item rows")
	}
	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, executor SQLExecutor, item *models.Item) (*models.Item, error) {
	query := `UPDATE items SET
	            name = $1, category = $2, expiration_date = $3, quantity = $4, image_url = $5
	          WHERE item_id = $6
	          RETURNING ` + itemColumns

	updated, err := scanItemRow(executor.QueryRowContext(ctx, query,
		item.Name, item.Category, item.ExpirationDate, item.Quantity, item.ImageURL, item.ItemID,
	))
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("updating item %q", item.ItemID))
	}
	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, executor SQLExecutor, itemID string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return classifyError(err, fmt.Sprintf("deleting item %q", itemID))
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
