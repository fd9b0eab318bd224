package client

// Wire types of the inventory API, as the server encodes them.

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	Role    string `json:"role"`
	StaffID string `json:"staffId"`
	StoreID string `json:"storeId,omitempty"`
	Name    string `json:"name"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type LoginResult struct {
	User
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type Item struct {
	ItemID         string  `json:"itemId"`
	Name           string  `json:"name"`
	Category       *string `json:"category"`
	ExpirationDate string  `json:"expirationDate"`
	Quantity       int     `json:"quantity"`
	ImageURL       *string `json:"imageUrl"`
	AddedByStaffID string  `json:"addedByStaffId"`
	StoreCode      string  `json:"storeCode"`
}

type Staff struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	StoreID string `json:"storeId"`
}

type AccessCode struct {
	Code      string `json:"code"`
	StaffID   string `json:"staffId"`
	CreatedAt int64  `json:"createdAt"`
}

type StoreInfo struct {
	Code string `json:"storeCode"`
	Name string `json:"storeName"`
}

type Snapshot struct {
	Items       []Item       `json:"items"`
	Staff       []Staff      `json:"staff"`
	AccessCodes []AccessCode `json:"accessCodes"`
	Stores      []StoreInfo  `json:"stores"`
}

// NewItem is the body of POST /items.
type NewItem struct {
	Name           string  `json:"name"`
	ExpirationDate string  `json:"expirationDate"`
	Category       *string `json:"category,omitempty"`
	Quantity       int     `json:"quantity"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	StaffID        string  `json:"staffId"`
	StoreCode      string  `json:"storeCode"`
}

// ItemUpdate is the body of PUT /items/:itemId.
type ItemUpdate struct {
	Name           string  `json:"name"`
	ExpirationDate string  `json:"expirationDate"`
	Category       *string `json:"category,omitempty"`
	Quantity       int     `json:"quantity"`
	ImageURL       *string `json:"imageUrl,omitempty"`
}

// NewStaff is the body of POST /admin/staff. Empty StaffID lets the server pick one.
type NewStaff struct {
	StoreCode string `json:"storeCode"`
	StaffID   string `json:"staffId,omitempty"`
	Name      string `json:"name,omitempty"`
}

type StaffCreated struct {
	Message    string `json:"message"`
	AccessCode string `json:"accessCode"`
	StaffID    string `json:"staffId"`
}

type AskRequest struct {
	Query             string `json:"query"`
	ItemContext       string `json:"itemContext"`
	SystemInstruction string `json:"systemInstruction"`
}

type AskResponse struct {
	Text string `json:"text"`
}
