package main

import (
	"net/http"

	"github.com/ddbb-bakery/pos/internal/api"
	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/internal/infrastructure"
	"github.com/ddbb-bakery/pos/pkg/middleware"
	"github.com/ddbb-bakery/pos/pkg/module"
	"github.com/ddbb-bakery/pos/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(cfg *config.Config, infra *infrastructure.Infrastructure, domain *api.Domain) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}
	apiModule.Use(middleware.Compress())

	appModule, err := app.NewModule("", app.Deps{
		Sessions:  domain.Sessions,
		Catalog:   domain.Catalog,
		Sales:     domain.Sales,
		Threshold: cfg.Cart.DetectionThreshold,
		APIBase:   cfg.API.BasePath,
		Logger:    infra.Logger,
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Compress())
	appModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
