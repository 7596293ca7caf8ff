package api

import (
	"fmt"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/internal/catalog"
	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/internal/infrastructure"
	"github.com/ddbb-bakery/pos/internal/sales"
	"github.com/ddbb-bakery/pos/internal/session"
	"github.com/ddbb-bakery/pos/pkg/shell"
)

// Domain holds the domain systems shared by the API and the web app.
type Domain struct {
	Catalog  catalog.System
	Sales    sales.System
	Sessions *session.Store
}

// NewDomain creates the domain systems. Sessions render from table.
func NewDomain(cfg *config.Config, infra *infrastructure.Infrastructure, table *shell.Table) (*Domain, error) {
	products := catalog.Defaults
	if cfg.Catalog.File != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		products = loaded
	}

	catalogSys, err := catalog.New(products, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("catalog init failed: %w", err)
	}

	salesSys := sales.New(
		infra.Database.Connection(),
		infra.Logger,
		cfg.API.Pagination,
	)

	threshold := cfg.Cart.DetectionThreshold
	sessions := session.NewStore(
		table,
		func() *cart.Cart { return cart.New(catalogSys, threshold) },
		cfg.Session,
		infra.Logger,
	)

	return &Domain{
		Catalog:  catalogSys,
		Sales:    salesSys,
		Sessions: sessions,
	}, nil
}

// Start runs the session sweeper on the lifecycle coordinator.
func (d *Domain) Start(infra *infrastructure.Infrastructure) {
	d.Sessions.Start(infra.Lifecycle)
}
