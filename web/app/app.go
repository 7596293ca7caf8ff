// Package app provides the kiosk web module: four server-rendered views
// selected per session by the navigation shell, plus the static assets
// that swap views in place.
package app

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ddbb-bakery/pos/internal/catalog"
	"github.com/ddbb-bakery/pos/internal/session"
	"github.com/ddbb-bakery/pos/pkg/module"
	"github.com/ddbb-bakery/pos/pkg/shell"
	"github.com/ddbb-bakery/pos/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

//go:embed static/*
var staticFS embed.FS

const layout = "app.html"

const defaultTitle = "DDBB Bakery"

const defaultAPIBase = "/api"

var views = []web.ViewDef{
	{Route: "/", Template: "main.html", Title: "DDBB Bakery"},
	{Route: "/guide", Template: "guide.html", Title: "이용 안내"},
	{Route: "/payment", Template: "payment.html", Title: "결제"},
	{Route: "/admin", Template: "admin.html", Title: "AI Dashboard"},
}

// Deps are the systems the views read from.
type Deps struct {
	Sessions  *session.Store
	Catalog   catalog.System
	Sales     SalesLister
	Threshold float64
	APIBase   string
	Logger    *slog.Logger
}

// page is the shell view for one ViewDef.
type page struct {
	def web.ViewDef
}

func (p *page) Name() string {
	return p.def.Template
}

// Routes returns the route table entries, one per view.
func Routes() []shell.Route {
	routes := make([]shell.Route, len(views))
	for i, v := range views {
		routes[i] = shell.Route{
			Pattern: v.Route,
			View:    func() shell.View { return &page{def: v} },
		}
	}
	return routes
}

// Table returns the kiosk route table.
func Table() *shell.Table {
	return shell.MustTable(Routes()...)
}

// NewModule creates the app module configured for the given base path.
func NewModule(basePath string, deps Deps) (*module.Module, error) {
	if deps.APIBase == "" {
		deps.APIBase = defaultAPIBase
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		views,
		web.WithFuncs(template.FuncMap{
			"won":     formatWon,
			"percent": formatPercent,
			"api":     func() string { return deps.APIBase },
		}),
	)
	if err != nil {
		return nil, err
	}

	guide, err := renderGuide()
	if err != nil {
		return nil, err
	}

	router, err := buildRouter(ts, deps, guide)
	if err != nil {
		return nil, err
	}
	return module.New(basePath, router), nil
}

func buildRouter(ts *web.TemplateSet, deps Deps, guide GuideData) (http.Handler, error) {
	static, err := web.Static(staticFS, "static")
	if err != nil {
		return nil, err
	}

	h := &handler{
		ts:     ts,
		deps:   deps,
		guide:  guide,
		logger: deps.Logger.With("module", "app"),
	}

	r := web.NewRouter()
	r.Handle("GET /static/", http.StripPrefix("/static/", static))
	r.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, ts.BasePath()+"/static/favicon.svg", http.StatusMovedPermanently)
	})
	r.SetFallback(h.serve)
	return r, nil
}
