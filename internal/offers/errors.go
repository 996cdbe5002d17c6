package offers

import (
	"errors"
	"net/http"
)

// Domain errors for the offers system.
var (
	// ErrNotFound indicates the requested offer does not exist.
	ErrNotFound = errors.New("offer not found")

	// ErrDuplicate indicates a conflicting offer already exists.
	ErrDuplicate = errors.New("offer already exists")

	// ErrInvalidID indicates the offer identifier is malformed.
	ErrInvalidID = errors.New("invalid offer id")

	// ErrInvalidOffer indicates an offer is missing required fields.
	ErrInvalidOffer = errors.New("invalid offer")

	// ErrEmptyCV indicates a match was requested without CV text.
	ErrEmptyCV = errors.New("cv text required")
)

// MapHTTPStatus maps offer domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidOffer), errors.Is(err, ErrEmptyCV):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
