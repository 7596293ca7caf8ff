package api

import (
	"fmt"
	"net/http"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/internal/catalog"
	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/internal/sales"
	"github.com/ddbb-bakery/pos/pkg/openapi"
	"github.com/ddbb-bakery/pos/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, cfg *config.Config, runtime *Runtime, domain *Domain) error {
	catalogHandler := catalog.NewHandler(domain.Catalog, runtime.Logger)
	cartHandler := cart.NewHandler(domain.Sessions, runtime.Logger, runtime.MaxBodySize)
	salesHandler := sales.NewHandler(domain.Sales, domain.Sessions, runtime.Logger, runtime.Pagination)

	groups := []routes.Group{
		catalogHandler.Routes(),
		cartHandler.Routes(),
	}
	groups = append(groups, salesHandler.Routes()...)

	routes.Register(mux, groups...)

	doc, err := buildSpec(cfg, groups)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.Handler(doc))

	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	components := openapi.NewComponents()
	components.AddSchemas(catalog.Spec.Schemas())
	components.AddSchemas(cart.Spec.Schemas())
	components.AddSchemas(sales.Spec.Schemas())

	spec := openapi.NewSpec(&cfg.API.OpenAPI, cfg.Version, cfg.API.OpenAPI.ServerURL(cfg.API.BasePath), components)
	routes.Describe(spec, groups...)

	doc, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return doc, nil
}
