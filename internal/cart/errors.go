package cart

import (
	"errors"
	"net/http"
)

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownProduct) || errors.Is(err, ErrInvalidQuantity) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
