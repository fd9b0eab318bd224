package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrLoadData is recorded when a snapshot fetch fails.
var ErrLoadData = errors.New("Failed to load application data. Please check your connection and try again.")

// ErrNotLoggedIn is returned by operations that need a signed-in user.
var ErrNotLoggedIn = errors.New("not logged in")

// AdminView is the admin's current page.
type AdminView string

const (
	AdminPanel     AdminView = "admin"
	AdminDashboard AdminView = "dashboard"
)

// State is a copy of everything a view renders from.
type State struct {
	User        *User
	Items       []Item
	Staff       []Staff
	AccessCodes []AccessCode
	Stores      []StoreInfo
	Loading     bool
	LoadError   error
	AdminView   AdminView
}

// Store holds the signed-in user and the last server snapshot. Every mutation
// ends with a full refetch; local data is never patched. Safe for concurrent use.
type Store struct {
	api *Client

	mu      sync.Mutex
	state   State
	session uint64
}

// NewStore creates an empty, logged-out Store.
func NewStore(api *Client) *Store {
	return &Store{api: api, state: State{AdminView: AdminPanel}}
}

// State returns a snapshot of the store's state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	st.Items = slices.Clone(st.Items)
	st.Staff = slices.Clone(st.Staff)
	st.AccessCodes = slices.Clone(st.AccessCodes)
	st.Stores = slices.Clone(st.Stores)
	return st
}

// View routes the current state.
func (s *Store) View() View {
	return Route(s.State())
}

// Login signs in and loads the role-scoped snapshot. A failed snapshot still
// leaves the user signed in, with LoadError set.
func (s *Store) Login(ctx context.Context, role, credential string) error {
	res, err := s.api.Login(ctx, role, credential)
	if err != nil {
		return err
	}
	s.api.SetToken(res.Token)

	s.mu.Lock()
	s.session++
	user := res.User
	s.state = State{User: &user, AdminView: AdminPanel}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Logout forgets the user, the token and all data.
func (s *Store) Logout() {
	s.api.SetToken("")
	s.mu.Lock()
	s.session++
	s.state = State{AdminView: AdminPanel}
	s.mu.Unlock()
}

func (s *Store) NavigateToDashboard() { s.setAdminView(AdminDashboard) }
func (s *Store) NavigateToAdmin()     { s.setAdminView(AdminPanel) }

func (s *Store) setAdminView(v AdminView) {
	s.mu.Lock()
	s.state.AdminView = v
	s.mu.Unlock()
}

// Refresh refetches the snapshot for the current user: everything for admins,
// their own store for staff. On failure the previous data stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.state.User == nil {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	user := *s.state.User
	session := s.session
	s.state.Loading = true
	s.state.LoadError = nil
	s.mu.Unlock()

	var snap *Snapshot
	var err error
	if user.IsAdmin() {
		snap, err = s.api.FetchAll(ctx)
	} else {
		snap, err = s.api.FetchStore(ctx, user.StoreID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != session {
		// Logged out or in again while fetching.
		return nil
	}
	s.state.Loading = false
	if err != nil {
		s.state.LoadError = fmt.Errorf("%w: %w", ErrLoadData, err)
		return s.state.LoadError
	}
	s.state.Items = orEmpty(snap.Items)
	s.state.Staff = orEmpty(snap.Staff)
	s.state.AccessCodes = orEmpty(snap.AccessCodes)
	s.state.Stores = orEmpty(snap.Stores)
	return nil
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func (s *Store) currentUser() (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return User{}, ErrNotLoggedIn
	}
	return *s.state.User, nil
}

// refreshAfter refetches after a successful mutation. A failed refetch is
// recorded in State, not returned.
func (s *Store) refreshAfter(ctx context.Context) {
	_ = s.Refresh(ctx)
}

// AddItem records an item for storeCode as the current user.
func (s *Store) AddItem(ctx context.Context, item NewItem, storeCode string) (*Item, error) {
	user, err := s.currentUser()
	if err != nil {
		return nil, err
	}
	item.StaffID = user.StaffID
	item.StoreCode = storeCode

	created, err := s.api.AddItem(ctx, item)
	if err != nil {
		return nil, err
	}
	s.refreshAfter(ctx)
	return created, nil
}

func (s *Store) UpdateItem(ctx context.Context, itemID string, update ItemUpdate) (*Item, error) {
	if _, err := s.currentUser(); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateItem(ctx, itemID, update)
	if err != nil {
		return nil, err
	}
	s.refreshAfter(ctx)
	return updated, nil
}

func (s *Store) DeleteItem(ctx context.Context, itemID string) error {
	if _, err := s.currentUser(); err != nil {
		return err
	}
	if err := s.api.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.refreshAfter(ctx)
	return nil
}

// AddStaffAndCode provisions a staff member for storeCode. An empty staffID
// lets the server generate one.
func (s *Store) AddStaffAndCode(ctx context.Context, storeCode, staffID string) (*StaffCreated, error) {
	if _, err := s.currentUser(); err != nil {
		return nil, err
	}
	created, err := s.api.AddStaff(ctx, NewStaff{StoreCode: storeCode, StaffID: staffID})
	if err != nil {
		return nil, err
	}
	s.refreshAfter(ctx)
	return created, nil
}

func (s *Store) DeleteAccessCode(ctx context.Context, code string) error {
	if _, err := s.currentUser(); err != nil {
		return err
	}
	if err := s.api.DeleteAccessCode(ctx, code); err != nil {
		return err
	}
	s.refreshAfter(ctx)
	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, staffID string) error {
	if _, err := s.currentUser(); err != nil {
		return err
	}
	if err := s.api.DeleteStaff(ctx, staffID); err != nil {
		return err
	}
	s.refreshAfter(ctx)
	return nil
}

// Ask forwards a question to the AI assistant. Nothing is refetched.
func (s *Store) Ask(ctx context.Context, req AskRequest) (string, error) {
	if _, err := s.currentUser(); err != nil {
		return "", err
	}
	resp, err := s.api.Ask(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
