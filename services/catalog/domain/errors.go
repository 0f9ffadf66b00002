package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no item in the catalog carries the requested ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same ID is already in the catalog.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidPrice indicates the price text could not be read as a number.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidSortDirection indicates a sort request named an unknown direction.
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)
