package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/repositories"

	"golang.org/x/sync/errgroup"
)

var ErrStoreCodeRequired = errors.New("storeCode is required")

// DataService builds the snapshots clients render from.
type DataService interface {
	// GetAllData returns every item, staff member, access code and store.
	GetAllData(ctx context.Context) (*models.Snapshot, error)
	// GetStoreData filters items to one store. Staff, access codes and stores
	// stay global: store pages show the chain-wide staff directory.
	GetStoreData(ctx context.Context, storeCode string) (*models.Snapshot, error)
}

type dataService struct {
	itemRepo  repositories.ItemRepository
	staffRepo repositories.StaffRepository
	codeRepo  repositories.AccessCodeRepository
	storeRepo repositories.StoreRepository
}

// NewDataService creates a new instance of DataService.
func NewDataService(
	ir repositories.ItemRepository,
	sr repositories.StaffRepository,
	cr repositories.AccessCodeRepository,
	str repositories.StoreRepository,
) DataService {
	return &dataService{
		itemRepo:  ir,
		staffRepo: sr,
		codeRepo:  cr,
		storeRepo: str,
	}
}

func (s *dataService) GetAllData(ctx context.Context) (*models.Snapshot, error) {
	return s.snapshot(ctx, nil)
}

func (s *dataService) GetStoreData(ctx context.Context, storeCode string) (*models.Snapshot, error) {
	storeCode = strings.TrimSpace(storeCode)
	if storeCode == "" {
		return nil, ErrStoreCodeRequired
	}
	return s.snapshot(ctx, &storeCode)
}

func (s *dataService) snapshot(ctx context.Context, storeCode *string) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.itemRepo.ListItems(gctx, storeCode)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}
		snap.Items = items
		return nil
	})
	g.Go(func() error {
		staff, err := s.staffRepo.ListStaff(gctx)
		if err != nil {
			return fmt.Errorf("failed to list staff: %w", err)
		}
		snap.Staff = staff
		return nil
	})
	g.Go(func() error {
		codes, err := s.codeRepo.ListAccessCodes(gctx)
		if err != nil {
			return fmt.Errorf("failed to list access codes: %w", err)
		}
		snap.AccessCodes = codes
		return nil
	})
	g.Go(func() error {
		stores, err := s.storeRepo.ListStores(gctx)
		if err != nil {
			return fmt.Errorf("failed to list stores: %w", err)
		}
		snap.Stores = stores
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	normalizeSnapshot(snap)
	return snap, nil
}

func normalizeSnapshot(snap *models.Snapshot) {
	if snap.Items == nil {
		snap.Items = []models.Item{}
	}
	if snap.Staff == nil {
		snap.Staff = []models.Staff{}
	}
	if snap.AccessCodes == nil {
		snap.AccessCodes = []models.AccessCode{}
	}
	if snap.Stores == nil {
		snap.Stores = []models.Store{}
	}
}
