package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"store_expiry_backend/internal/models"
)

// StaffRepository defines the database operations on staff rows.
type StaffRepository interface {
	CreateStaff(ctx context.Context, executor SQLExecutor, staff *models.Staff) error
	GetStaffByID(ctx context.Context, staffID string) (*models.Staff, error)
	StaffExists(ctx context.Context, staffID string) (bool, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	DeleteStaff(ctx context.Context, executor SQLExecutor, staffID string) error
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) CreateStaff(ctx context.Context, executor SQLExecutor, staff *models.Staff) error {
	query := `INSERT INTO staff (staff_id, store_id, name) VALUES ($1, $2, $3)`
	if _, err := executor.ExecContext(ctx, query, staff.StaffID, staff.StoreID, staff.Name); err != nil {
		return classifyError(err, fmt.Sprintf("creating staff %q", staff.StaffID))
	}
	return nil
}

func scanStaffRow(row scanner) (*models.Staff, error) {
	var staff models.Staff
	var storeID sql.NullString
	if err := row.Scan(&staff.StaffID, &staff.Name, &storeID); err != nil {
		return nil, err
	}
	staff.StoreID = storeID.String
	return &staff, nil
}

func (r *staffRepository) GetStaffByID(ctx context.Context, staffID string) (*models.Staff, error) {
	query := `SELECT staff_id, name, store_id FROM staff WHERE staff_id = $1`
	staff, err := scanStaffRow(r.db.QueryRowContext(ctx, query, staffID))
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("getting staff %q", staffID))
	}
	return staff, nil
}

func (r *staffRepository) StaffExists(ctx context.Context, staffID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM staff WHERE staff_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, staffID).Scan(&exists); err != nil {
		return false, classifyError(err, "checking staff existence")
	}
	return exists, nil
}

func (r *staffRepository) ListStaff(ctx context.Context) ([]models.Staff, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT staff_id, name, store_id FROM staff ORDER BY name ASC`)
	if err != nil {
		return nil, classifyError(err, "querying staff")
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		s, err := scanStaffRow(rows)
		if err != nil {
			return nil, classifyError(err, "scanning staff")
		}
		staff = append(staff, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "iterating staff rows")
	}
	return staff, nil
}

// DeleteStaff removes a staff row. Its access codes go with it (ON DELETE CASCADE);
// items still pointing at the staff make this fail with ErrForeignKey.
func (r *staffRepository) DeleteStaff(ctx context.Context, executor SQLExecutor, staffID string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM staff WHERE staff_id = $1`, staffID)
	if err != nil {
		return classifyError(err, fmt.Sprintf("deleting staff %q", staffID))
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
