package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/repositories"
	"store_expiry_backend/pkg/utils"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffValidation    = errors.New("staff data validation error")
	ErrStaffExists        = errors.New("staff ID already exists")
	ErrStoreNotFound      = errors.New("store not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffHasItems      = errors.New("staff member cannot be deleted while items reference them")
	ErrAccessCodeNotFound = errors.New("access code not found")
	ErrAccessCodeConflict = errors.New("generated access code already exists")
)

// --- Staff DTOs ---
type CreateStaffRequest struct {
	StoreCode string  `json:"storeCode" binding:"required"`
	StaffID   *string `json:"staffId"`
	Name      *string `json:"name"`
}

type CreateStaffResponse struct {
	Message    string `json:"message"`
	AccessCode string `json:"accessCode"`
	StaffID    string `json:"staffId"`
}

// --- StaffService Interface ---
type StaffService interface {
	// ProvisionStaff creates a staff member and their access code in one transaction.
	ProvisionStaff(ctx context.Context, req CreateStaffRequest) (*CreateStaffResponse, error)
	DeleteStaff(ctx context.Context, staffID string) error
	DeleteAccessCode(ctx context.Context, code string) error
}

type staffService struct {
	staffRepo repositories.StaffRepository
	codeRepo  repositories.AccessCodeRepository
	tx        repositories.Transactor
	now       func() time.Time
	newCode   func() string
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(sr repositories.StaffRepository, cr repositories.AccessCodeRepository, tx repositories.Transactor) StaffService {
	return &staffService{
		staffRepo: sr,
		codeRepo:  cr,
		tx:        tx,
		now:       time.Now,
		newCode:   utils.NewAccessCode,
	}
}

func (s *staffService) ProvisionStaff(ctx context.Context, req CreateStaffRequest) (*CreateStaffResponse, error) {
	storeCode := strings.TrimSpace(req.StoreCode)
	if storeCode == "" {
		return nil, fmt.Errorf("%w: storeCode is required", ErrStaffValidation)
	}

	now := s.now()
	staffID := strings.TrimSpace(utils.StringValue(req.StaffID))
	if staffID == "" {
		staffID = utils.TimeToken("staff", now)
	}
	name := strings.TrimSpace(utils.StringValue(req.Name))
	if name == "" {
		name = staffID
	}

	// The primary key decides in the end; this only gives the common case a clean answer.
	exists, err := s.staffRepo.StaffExists(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to check staff existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrStaffExists, staffID)
	}

	staff := &models.Staff{StaffID: staffID, Name: name, StoreID: storeCode}
	code := &models.AccessCode{Code: s.newCode(), StaffID: staffID, CreatedAt: now.UnixMilli()}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.staffRepo.CreateStaff(ctx, exec, staff); err != nil {
			return err
		}
		return s.codeRepo.CreateAccessCode(ctx, exec, code)
	})
	if err != nil {
		return nil, s.mapProvisionError(err, staffID)
	}

	utils.LogInfo("Staff provisioned", map[string]interface{}{"staff_id": staffID, "store_code": storeCode})
	return &CreateStaffResponse{
		Message:    fmt.Sprintf("Successfully created staff %s", staffID),
		AccessCode: code.Code,
		StaffID:    staffID,
	}, nil
}

func (s *staffService) mapProvisionError(err error, staffID string) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		if repositories.ConstraintOf(err) == repositories.ConstraintAccessCodesPKey {
			return ErrAccessCodeConflict
		}
		return fmt.Errorf("%w: %s", ErrStaffExists, staffID)
	case errors.Is(err, repositories.ErrForeignKey):
		return ErrStoreNotFound
	default:
		return fmt.Errorf("failed to provision staff: %w", err)
	}
}

func (s *staffService) DeleteStaff(ctx context.Context, staffID string) error {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrStaffValidation)
	}
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.staffRepo.DeleteStaff(ctx, exec, staffID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		if errors.Is(err, repositories.ErrForeignKey) {
			return ErrStaffHasItems
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

func (s *staffService) DeleteAccessCode(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrStaffValidation)
	}
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.codeRepo.DeleteAccessCode(ctx, exec, code)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccessCodeNotFound
		}
		return fmt.Errorf("failed to delete access code: %w", err)
	}
	return nil
}
