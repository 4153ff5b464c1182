package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart is returned when checkout is attempted with zero line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCustomer is returned when checkout identity fields are missing.
	ErrInvalidCustomer = errors.New("invalid customer")
	// ErrInvalidTransition is returned for a disallowed order status move.
	ErrInvalidTransition = errors.New("invalid status transition")
)
