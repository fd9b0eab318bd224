package models

// Store is one shop of the chain. Rows are seeded once and never modified.
type Store struct {
	Code string `json:"storeCode" db:"store_code"`
	Name string `json:"storeName" db:"store_name"`
}
