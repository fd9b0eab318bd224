package models

// DateLayout is the wire and storage format of expiration dates.
const DateLayout = "2006-01-02"

// Item is a batch of a product logged by staff with its expiration date.
type Item struct {
	ItemID         string  `json:"itemId" db:"item_id"`
	Name           string  `json:"name" db:"name"`
	Category       *string `json:"category" db:"category"`
	ExpirationDate string  `json:"expirationDate" db:"expiration_date"`
	Quantity       int     `json:"quantity" db:"quantity"`
	ImageURL       *string `json:"imageUrl" db:"image_url"`
	AddedByStaffID string  `json:"addedByStaffId" db:"added_by_staff_id"`
	StoreCode      string  `json:"storeCode" db:"store_code"`
}

// Snapshot is the full data set a client renders from.
type Snapshot struct {
	Items       []Item       `json:"items"`
	Staff       []Staff      `json:"staff"`
	AccessCodes []AccessCode `json:"accessCodes"`
	Stores      []Store      `json:"stores"`
}
