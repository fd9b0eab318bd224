package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"store_expiry_backend/internal/models"
)

// AccessCodeRepository defines the database operations on staff access codes.
type AccessCodeRepository interface {
	CreateAccessCode(ctx context.Context, executor SQLExecutor, code *models.AccessCode) error
	GetAccessCode(ctx context.Context, code string) (*models.AccessCode, error)
	ListAccessCodes(ctx context.Context) ([]models.AccessCode, error)
	DeleteAccessCode(ctx context.Context, executor SQLExecutor, code string) error
}

type accessCodeRepository struct {
	db *sql.DB
}

// NewAccessCodeRepository creates a new instance of AccessCodeRepository.
func NewAccessCodeRepository(db *sql.DB) AccessCodeRepository {
	return &accessCodeRepository{db: db}
}

func (r *accessCodeRepository) CreateAccessCode(ctx context.Context, executor SQLExecutor, code *models.AccessCode) error {
	query := `INSERT INTO access_codes (code, staff_id, created_at) VALUES ($1, $2, $3)`
	if _, err := executor.ExecContext(ctx, query, code.Code, code.StaffID, code.CreatedAt); err != nil {
		return classifyError(err, fmt.Sprintf("creating access code for staff %q", code.StaffID))
	}
	return nil
}

// GetAccessCode looks up an exact code. Callers normalise case.
func (r *accessCodeRepository) GetAccessCode(ctx context.Context, code string) (*models.AccessCode, error) {
	var ac models.AccessCode
	var staffID sql.NullString
	query := `SELECT code, staff_id, created_at FROM access_codes WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&ac.Code, &staffID, &ac.CreatedAt)
	if err != nil {
		return nil, classifyError(err, "finding access code")
	}
	ac.StaffID = staffID.String
	return &ac, nil
}

func (r *accessCodeRepository) ListAccessCodes(ctx context.Context) ([]models.AccessCode, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, staff_id, created_at FROM access_codes ORDER BY created_at DESC`)
	if err != nil {
		return nil, classifyError(err, "querying access codes")
	}
	defer rows.Close()

	codes := []models.AccessCode{}
	for rows.Next() {
		var ac models.AccessCode
		var staffID sql.NullString
		if err := rows.Scan(&ac.Code, &staffID, &ac.CreatedAt); err != nil {
			return nil, classifyError(err, "scanning access code")
		}
		ac.StaffID = staffID.String
		codes = append(codes, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "iterating access code rows")
	}
	return codes, nil
}

func (r *accessCodeRepository) DeleteAccessCode(ctx context.Context, executor SQLExecutor, code string) error {
	result, err := executor.ExecContext(ctx, `DELETE FROM access_codes WHERE code = $1`, code)
	if err != nil {
		return classifyError(err, "deleting access code")
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
