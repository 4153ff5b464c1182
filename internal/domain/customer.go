package domain

import "time"

// Customer roles drive which dashboard endpoints a login may use.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// Customer represents a registered account.
type Customer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	VendorID     string    `json:"vendorId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
