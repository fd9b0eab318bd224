package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store_expiry_backend/internal/middleware"
	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin = models.User{Role: models.RoleAdmin, StaffID: models.AdminStaffID, Name: models.AdminName}
	testStaff = models.User{Role: models.RoleStaff, StaffID: "staff_1", StoreID: "S001", Name: "Aigerim"}
)

// newTestEngine returns an engine whose requests run as user, or anonymously when user is nil.
func newTestEngine(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		u := *user
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserKey, u)
			c.Set(middleware.ContextRoleKey, u.Role)
			c.Next()
		})
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type fakeAuthService struct {
	resp *models.LoginResponse
	err  error
	got  models.Credentials
}

func (f *fakeAuthService) Login(_ context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	f.got = creds
	return f.resp, f.err
}

type fakeDataService struct {
	snap      *models.Snapshot
	err       error
	storeCode string
	allCalls  int
}

func (f *fakeDataService) GetAllData(_ context.Context) (*models.Snapshot, error) {
	f.allCalls++
	return f.snap, f.err
}

func (f *fakeDataService) GetStoreData(_ context.Context, storeCode string) (*models.Snapshot, error) {
	f.storeCode = storeCode
	return f.snap, f.err
}

type fakeItemService struct {
	item    *models.Item
	err     error
	actor   models.User
	itemID  string
	create  services.CreateItemRequest
	update  services.UpdateItemRequest
	deleted bool
}

func (f *fakeItemService) CreateItem(_ context.Context, actor models.User, req services.CreateItemRequest) (*models.Item, error) {
	f.actor, f.create = actor, req
	return f.item, f.err
}

func (f *fakeItemService) UpdateItem(_ context.Context, actor models.User, itemID string, req services.UpdateItemRequest) (*models.Item, error) {
	f.actor, f.itemID, f.update = actor, itemID, req
	return f.item, f.err
}

func (f *fakeItemService) DeleteItem(_ context.Context, actor models.User, itemID string) error {
	f.actor, f.itemID = actor, itemID
	f.deleted = f.err == nil
	return f.err
}

type fakeStaffService struct {
	resp    *services.CreateStaffResponse
	err     error
	req     services.CreateStaffRequest
	deleted string
}

func (f *fakeStaffService) ProvisionStaff(_ context.Context, req services.CreateStaffRequest) (*services.CreateStaffResponse, error) {
	f.req = req
	return f.resp, f.err
}

func (f *fakeStaffService) DeleteStaff(_ context.Context, staffID string) error {
	f.deleted = staffID
	return f.err
}

func (f *fakeStaffService) DeleteAccessCode(_ context.Context, code string) error {
	f.deleted = code
	return f.err
}

type fakeAIService struct {
	resp *services.AskResponse
	err  error
	req  services.AskRequest
}

func (f *fakeAIService) Ask(_ context.Context, req services.AskRequest) (*services.AskResponse, error) {
	f.req = req
	return f.resp, f.err
}
