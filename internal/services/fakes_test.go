package services

import (
	"context"
	"sort"
	"sync"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/repositories"
)

type fakeStaffRepo struct {
	mu        sync.Mutex
	staff     map[string]models.Staff
	existsErr error
	createErr error
	deleteErr error
	listErr   error
}

func newFakeStaffRepo(staff ...models.Staff) *fakeStaffRepo {
	r := &fakeStaffRepo{staff: map[string]models.Staff{}}
	for _, s := range staff {
		r.staff[s.StaffID] = s
	}
	return r
}

func (r *fakeStaffRepo) CreateStaff(_ context.Context, _ repositories.SQLExecutor, staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.staff[staff.StaffID] = *staff
	return nil
}

func (r *fakeStaffRepo) GetStaffByID(_ context.Context, staffID string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[staffID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *fakeStaffRepo) StaffExists(_ context.Context, staffID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.staff[staffID]
	return ok, nil
}

func (r *fakeStaffRepo) ListStaff(_ context.Context) ([]models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Staff
	for _, s := range r.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeStaffRepo) DeleteStaff(_ context.Context, _ repositories.SQLExecutor, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.staff[staffID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.staff, staffID)
	return nil
}

type fakeCodeRepo struct {
	mu        sync.Mutex
	codes     map[string]models.AccessCode
	createErr error
}

func newFakeCodeRepo(codes ...models.AccessCode) *fakeCodeRepo {
	r := &fakeCodeRepo{codes: map[string]models.AccessCode{}}
	for _, c := range codes {
		r.codes[c.Code] = c
	}
	return r
}

func (r *fakeCodeRepo) CreateAccessCode(_ context.Context, _ repositories.SQLExecutor, code *models.AccessCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.codes[code.Code] = *code
	return nil
}

func (r *fakeCodeRepo) GetAccessCode(_ context.Context, code string) (*models.AccessCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codes[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCodeRepo) ListAccessCodes(_ context.Context) ([]models.AccessCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AccessCode
	for _, c := range r.codes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *fakeCodeRepo) DeleteAccessCode(_ context.Context, _ repositories.SQLExecutor, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codes[code]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.codes, code)
	return nil
}

type fakeItemRepo struct {
	mu        sync.Mutex
	items     map[string]models.Item
	createErr error
	listErr   error
	// lastFilter records the store filter of the last ListItems call.
	lastFilter *string
}

func newFakeItemRepo(items ...models.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[string]models.Item{}}
	for _, it := range items {
		r.items[it.ItemID] = it
	}
	return r
}

func (r *fakeItemRepo) CreateItem(_ context.Context, _ repositories.SQLExecutor, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.items[item.ItemID] = *item
	out := *item
	return &out, nil
}

func (r *fakeItemRepo) GetItemByID(_ context.Context, itemID string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[itemID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &it, nil
}

func (r *fakeItemRepo) ListItems(_ context.Context, storeCode *string) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = storeCode
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Item
	for _, it := range r.items {
		if storeCode != nil && it.StoreCode != *storeCode {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExpirationDate != out[j].ExpirationDate {
			return out[i].ExpirationDate < out[j].ExpirationDate
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (r *fakeItemRepo) UpdateItem(_ context.Context, _ repositories.SQLExecutor, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		return nil, repositories.ErrNotFound
	}
	r.items[item.ItemID] = *item
	out := *item
	return &out, nil
}

func (r *fakeItemRepo) DeleteItem(_ context.Context, _ repositories.SQLExecutor, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[itemID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}

type fakeStoreRepo struct {
	stores []models.Store
	err    error
}

func (r *fakeStoreRepo) ListStores(_ context.Context) ([]models.Store, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.stores, nil
}

// fakeTransactor runs fn without a database and counts outcomes.
type fakeTransactor struct {
	commits   int
	rollbacks int
}

func (t *fakeTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	if err := fn(nil); err != nil {
		t.rollbacks++
		return err
	}
	t.commits++
	return nil
}
