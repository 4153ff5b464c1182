package domain

import "time"

// Vendor is a seller entity. Every product and resulting order line
// belongs to exactly one vendor.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"categoryId"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Category groups vendors for the booking wizard and marketplace browsing.
type Category struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
