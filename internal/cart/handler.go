package cart

import (
	"log/slog"
	"net/http"

	"github.com/ddbb-bakery/pos/pkg/handlers"
	"github.com/ddbb-bakery/pos/pkg/routes"
)

// Resolver finds the cart belonging to the caller, creating one if needed.
type Resolver interface {
	Cart(w http.ResponseWriter, r *http.Request) *Cart
}

// AddItemCommand adds a product by hand.
type AddItemCommand struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// AddDetectionsCommand carries detector output for one tray.
type AddDetectionsCommand struct {
	Detections []Detection `json:"detections"`
}

// DetectionsResult reports how many detections were counted.
type DetectionsResult struct {
	Accepted int     `json:"accepted"`
	Rejected int     `json:"rejected"`
	Cart     Summary `json:"cart"`
}

type Handler struct {
	carts   Resolver
	logger  *slog.Logger
	maxBody int64
}

func NewHandler(carts Resolver, logger *slog.Logger, maxBody int64) *Handler {
	return &Handler{
		carts:   carts,
		logger:  logger,
		maxBody: maxBody,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/cart",
		Tags:        []string{"Cart"},
		Description: "Current customer's cart",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get, OpenAPI: Spec.Get},
			{Method: "DELETE", Pattern: "", Handler: h.Reset, OpenAPI: Spec.Reset},
			{Method: "POST", Pattern: "/items", Handler: h.AddItem, OpenAPI: Spec.AddItem},
			{Method: "POST", Pattern: "/detections", Handler: h.AddDetections, OpenAPI: Spec.AddDetections},
		},
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Cart(w, r)
	handlers.RespondJSON(w, http.StatusOK, c.Summary())
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Cart(w, r)
	c.Reset()
	handlers.RespondJSON(w, http.StatusOK, c.Summary())
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var cmd AddItemCommand
	if err := handlers.DecodeJSON(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c := h.carts.Cart(w, r)
	if err := c.Add(cmd.Code, cmd.Quantity); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c.Summary())
}

func (h *Handler) AddDetections(w http.ResponseWriter, r *http.Request) {
	var cmd AddDetectionsCommand
	if err := handlers.DecodeJSON(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c := h.carts.Cart(w, r)
	accepted := c.AddDetections(cmd.Detections)

	h.logger.Debug("detections counted", "accepted", accepted, "received", len(cmd.Detections))
	handlers.RespondJSON(w, http.StatusOK, DetectionsResult{
		Accepted: accepted,
		Rejected: len(cmd.Detections) - accepted,
		Cart:     c.Summary(),
	})
}
