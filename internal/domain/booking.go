package domain

import "time"

// BookingStatus is the lifecycle state of an event booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the terminal record of the event wizard: a customer
// requesting a vendor for an event on a date.
type Booking struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customerId"`
	VendorID    string        `json:"vendorId"`
	EventTypeID string        `json:"eventTypeId"`
	EventDate   time.Time     `json:"eventDate"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// EventType is a static catalog entry (wedding, birthday, ...).
type EventType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
