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

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemValidation   = errors.New("item data validation error")
	ErrItemReference    = errors.New("staff or store referenced by item not found")
	ErrExpirationFormat = errors.New("invalid expirationDate format, please use YYYY-MM-DD")
	ErrForbiddenStore   = errors.New("staff may only manage items of their own store")
	ErrIdentityMismatch = errors.New("staffId and storeCode must match the signed-in staff member")
	ErrItemIDCollision  = errors.New("generated item id already exists")
)

// --- Item DTOs ---
type CreateItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	ExpirationDate string  `json:"expirationDate" binding:"required"`
	Category       *string `json:"category"`
	Quantity       *int    `json:"quantity" binding:"required"`
	ImageURL       *string `json:"imageUrl"`
	StaffID        string  `json:"staffId" binding:"required"`
	StoreCode      string  `json:"storeCode" binding:"required"`
}

type UpdateItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	ExpirationDate string  `json:"expirationDate" binding:"required"`
	Category       *string `json:"category"`
	Quantity       *int    `json:"quantity" binding:"required"`
	ImageURL       *string `json:"imageUrl"`
}

// ItemService applies the item rules. The actor is the caller's signed identity.
type ItemService interface {
	CreateItem(ctx context.Context, actor models.User, req CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, actor models.User, itemID string, req UpdateItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, actor models.User, itemID string) error
}

type itemService struct {
	itemRepo repositories.ItemRepository
	db       repositories.SQLExecutor
	now      func() time.Time
}

// NewItemService creates a new instance of ItemService.
func NewItemService(ir repositories.ItemRepository, db repositories.SQLExecutor) ItemService {
	return &itemService{
		itemRepo: ir,
		db:       db,
		now:      time.Now,
	}
}

func parseExpirationDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return "", ErrExpirationFormat
	}
	return s, nil
}

func validateItemFields(name, expiration string, quantity *int) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: name cannot be empty", ErrItemValidation)
	}
	if quantity == nil || *quantity <= 0 {
		return "", "", fmt.Errorf("%w: quantity must be a positive integer", ErrItemValidation)
	}
	date, err := parseExpirationDate(expiration)
	if err != nil {
		return "", "", err
	}
	return name, date, nil
}

func (s *itemService) CreateItem(ctx context.Context, actor models.User, req CreateItemRequest) (*models.Item, error) {
	name, date, err := validateItemFields(req.Name, req.ExpirationDate, req.Quantity)
	if err != nil {
		return nil, err
	}

	staffID := strings.TrimSpace(req.StaffID)
	storeCode := strings.TrimSpace(req.StoreCode)
	if staffID == "" || storeCode == "" {
		return nil, fmt.Errorf("%w: staffId and storeCode are required", ErrItemValidation)
	}
	if !actor.IsAdmin() && (staffID != actor.StaffID || storeCode != actor.StoreID) {
		return nil, ErrIdentityMismatch
	}

	item := &models.Item{
		ItemID:         utils.TimeToken("item", s.now()),
		Name:           name,
		Category:       utils.NewNullString(utils.StringValue(req.Category)),
		ExpirationDate: date,
		Quantity:       *req.Quantity,
		ImageURL:       utils.NewNullString(utils.StringValue(req.ImageURL)),
		AddedByStaffID: staffID,
		StoreCode:      storeCode,
	}

	created, err := s.itemRepo.CreateItem(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, fmt.Errorf("%w: %v", ErrItemReference, err)
		}
		if errors.Is(err, repositories.ErrDuplicateKey) && repositories.ConstraintOf(err) == repositories.ConstraintItemsPKey {
			return nil, fmt.Errorf("%w: %s", ErrItemIDCollision, item.ItemID)
		}
		return nil, fmt.Errorf("failed to create item in repository: %w", err)
	}
	return created, nil
}

// authorizeItem loads the item and checks a staff actor owns its store.
func (s *itemService) authorizeItem(ctx context.Context, actor models.User, itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	if !actor.IsAdmin() && item.StoreCode != actor.StoreID {
		return nil, ErrForbiddenStore
	}
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, actor models.User, itemID string, req UpdateItemRequest) (*models.Item, error) {
	name, date, err := validateItemFields(req.Name, req.ExpirationDate, req.Quantity)
	if err != nil {
		return nil, err
	}

	item, err := s.authorizeItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.ExpirationDate = date
	item.Quantity = *req.Quantity
	item.Category = utils.NewNullString(utils.StringValue(req.Category))
	item.ImageURL = utils.NewNullString(utils.StringValue(req.ImageURL))

	updated, err := s.itemRepo.UpdateItem(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item in repository: %w", err)
	}
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, actor models.User, itemID string) error {
	if _, err := s.authorizeItem(ctx, actor, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteItem(ctx, s.db, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
