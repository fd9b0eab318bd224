package models

// Staff is an employee attached to a store.
type Staff struct {
	StaffID string `json:"staffId" db:"staff_id"`
	Name    string `json:"name" db:"name"`
	StoreID string `json:"storeId" db:"store_id"`
}

// AccessCode is the credential a staff member logs in with.
// CreatedAt is unix milliseconds.
type AccessCode struct {
	Code      string `json:"code" db:"code"`
	StaffID   string `json:"staffId" db:"staff_id"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`
}
