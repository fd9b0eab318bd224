package models

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// AdminStaffID and AdminName describe the synthetic admin identity.
const (
	AdminStaffID = "admin_user"
	AdminName    = "Admin"
)

// User is an authenticated identity. Admins carry no store.
type User struct {
	Role    string `json:"role"`
	StaffID string `json:"staffId"`
	StoreID string `json:"storeId,omitempty"`
	Name    string `json:"name"`
}

// IsAdmin reports whether u has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credentials for login request
type Credentials struct {
	Role       string `json:"role" binding:"required"`
	Credential string `json:"credential" binding:"required"`
}

// LoginResponse is the identity plus the signed token later requests present.
type LoginResponse struct {
	User
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
