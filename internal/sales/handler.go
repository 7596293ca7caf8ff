package sales

import (
	"log/slog"
	"net/http"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/pkg/handlers"
	"github.com/ddbb-bakery/pos/pkg/pagination"
	"github.com/ddbb-bakery/pos/pkg/routes"
	"github.com/google/uuid"
)

// Resolver finds the caller's session id and cart.
type Resolver interface {
	Checkout(w http.ResponseWriter, r *http.Request) (uuid.UUID, *cart.Cart)
}

type Handler struct {
	sys        System
	carts      Resolver
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, carts Resolver, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		carts:      carts,
		logger:     logger,
		pagination: pagination,
	}
}

// Routes returns the checkout endpoint and the sales history.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix:      "/checkout",
			Tags:        []string{"Sales"},
			Description: "Pay for the current cart",
			Routes: []routes.Route{
				{Method: "POST", Pattern: "", Handler: h.Checkout, OpenAPI: Spec.Checkout},
			},
		},
		{
			Prefix:      "/sales",
			Tags:        []string{"Sales"},
			Description: "Completed sales",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
				{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			},
		},
	}
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, c := h.carts.Checkout(w, r)

	var sale *Sale
	err := c.Checkout(func(lines []cart.Line) error {
		var err error
		sale, err = h.sys.Checkout(r.Context(), sessionID, lines)
		return err
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, sale)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
