// Package sales records completed checkouts.
package sales

import (
	"time"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/google/uuid"
)

// Sale is a paid cart.
type Sale struct {
	ID        uuid.UUID   `json:"id"`
	SessionID uuid.UUID   `json:"session_id"`
	Lines     []cart.Line `json:"lines"`
	Count     int         `json:"count"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}
