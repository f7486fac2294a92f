package service

import "errors"

var (
	// ErrDuplicateContact is returned when registering a patient whose
	// contact number is already registered.
	ErrDuplicateContact = errors.New("contact number already registered")

	// ErrNotFound is returned by operations that require an existing row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when an appointment status change
	// is not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)
