// Package services defines the business logic for building, listing, and
// deleting quote comparisons. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Comparison-related errors.
var (
	// ErrMissingInsuranceLine is returned when a save request does not name
	// a product line.
	ErrMissingInsuranceLine = errors.New("insurance line is required")

	// ErrMissingCustomerName is returned when a save request carries an
	// empty or whitespace-only customer name.
	ErrMissingCustomerName = errors.New("customer name is required")

	// ErrNoQuotes is returned when a save request contains no quotes.
	ErrNoQuotes = errors.New("at least one quote is required")

	// ErrComparisonNotFound indicates that the requested comparison does
	// not exist.
	ErrComparisonNotFound = errors.New("comparison not found")
)
