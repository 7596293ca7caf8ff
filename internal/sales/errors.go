package sales

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("sale not found")
	ErrDuplicate = errors.New("sale already recorded")
	ErrEmptyCart = errors.New("cart is empty")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrEmptyCart) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
