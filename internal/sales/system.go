package sales

import (
	"context"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for recording and reading sales.
type System interface {
	// Checkout records the lines as one sale. The caller clears the cart
	// only after this succeeds.
	Checkout(ctx context.Context, sessionID uuid.UUID, lines []cart.Line) (*Sale, error)

	// List returns sales newest first.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Sale], error)

	// Find returns one sale.
	Find(ctx context.Context, id uuid.UUID) (*Sale, error)
}
