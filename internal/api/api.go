// Package api assembles the JSON API module.
package api

import (
	"net/http"

	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/pkg/middleware"
	"github.com/ddbb-bakery/pos/pkg/module"
)

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	mux := http.NewServeMux()
	if err := registerRoutes(mux, cfg, runtime, domain); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
