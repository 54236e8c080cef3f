package booking

import "fmt"

// Validation failure codes.
const (
	CodeMissingMarriageParties = "MissingMarriageParties"
	CodeInvalidDateRange       = "InvalidDateRange"
	CodeMissingRequiredField   = "MissingRequiredField"
	CodeIncompleteCheckDetails = "IncompleteCheckDetails"
	CodeInvalidCustomerNumber  = "InvalidCustomerNumber"
	CodeInvalidFieldValue      = "InvalidFieldValue"
)

// Conflict codes.
const (
	CodeVenueAlreadyBooked = "VenueAlreadyBooked"
	CodeVenueFullyBooked   = "VenueFullyBooked"
)

// ValidationError reports a malformed or contradictory booking payload.
// Field names the offending field so the client can highlight it.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ConflictError reports a date/venue collision with an existing confirmed
// booking. Venue carries the colliding booking's category for messaging.
type ConflictError struct {
	Code    string
	Venue   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFoundError reports an unknown booking ID on update or delete.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// StorageError wraps a persistence layer failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
