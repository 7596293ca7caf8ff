package catalog

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrDuplicate = errors.New("duplicate product code")
	ErrInvalid   = errors.New("invalid product")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
