package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ddbb-bakery/pos/pkg/handlers"
	"github.com/ddbb-bakery/pos/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/catalog",
		Tags:        []string{"Catalog"},
		Description: "Products and prices",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{code}", Handler: h.Find, OpenAPI: Spec.Find},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	p, err := h.sys.Find(code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if s, ok := h.sys.Suggest(code); ok {
				err = fmt.Errorf("%w (did you mean %s?)", err, s.Code)
			}
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}
