package errors

import "fmt"

// Code is a stable, machine-readable identifier for a quote failure kind.
// API clients key off the code, not the message text.
type Code string

const (
	CodeMissingField        Code = "MISSING_FIELD"
	CodeInvalidCoordinate   Code = "INVALID_COORDINATE"
	CodeInvalidCartValue    Code = "INVALID_CART_VALUE"
	CodeVenueUnavailable    Code = "VENUE_UNAVAILABLE"
	CodeDeliveryUnavailable Code = "DELIVERY_UNAVAILABLE"
)

// ErrMissingField indicates one or more required inputs were absent.
type ErrMissingField struct {
	Fields []string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

func (e *ErrMissingField) Code() Code { return CodeMissingField }

// ErrInvalidCoordinate indicates a latitude/longitude that could not be
// parsed or that falls outside the valid range.
type ErrInvalidCoordinate struct {
	Field string
	Value string
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *ErrInvalidCoordinate) Code() Code { return CodeInvalidCoordinate }

// ErrInvalidCartValue indicates a cart value string that is not a
// non-negative decimal amount.
type ErrInvalidCartValue struct {
	Value string
}

func (e *ErrInvalidCartValue) Error() string {
	return fmt.Sprintf("invalid cart value: %q", e.Value)
}

func (e *ErrInvalidCartValue) Code() Code { return CodeInvalidCartValue }

// ErrVenueUnavailable indicates the venue API failed or returned no usable
// pricing for the given slug.
type ErrVenueUnavailable struct {
	Slug string
	Err  error
}

func (e *ErrVenueUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("venue %q unavailable: %v", e.Slug, e.Err)
	}
	return fmt.Sprintf("venue %q unavailable", e.Slug)
}

func (e *ErrVenueUnavailable) Unwrap() error { return e.Err }

func (e *ErrVenueUnavailable) Code() Code { return CodeVenueUnavailable }

// ErrDeliveryUnavailable indicates the delivery distance falls outside every
// deliverable tier. Not retryable with the same inputs.
type ErrDeliveryUnavailable struct {
	DistanceMeters int
}

func (e *ErrDeliveryUnavailable) Error() string {
	return fmt.Sprintf("delivery not available for distance %dm", e.DistanceMeters)
}

func (e *ErrDeliveryUnavailable) Code() Code { return CodeDeliveryUnavailable }

// Coder is implemented by every taxonomy error in this package.
type Coder interface {
	error
	Code() Code
}
