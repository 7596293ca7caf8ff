package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/internal/catalog"
	"github.com/ddbb-bakery/pos/internal/sales"
	"github.com/ddbb-bakery/pos/internal/session"
	"github.com/ddbb-bakery/pos/pkg/pagination"
	"github.com/ddbb-bakery/pos/pkg/shell"
	"github.com/ddbb-bakery/pos/pkg/web"
)

const (
	// HeaderNavigate marks a request from shell.js that wants only the view fragment.
	HeaderNavigate = "X-Shell-Navigate"

	// HeaderPath carries the session's location after the request.
	HeaderPath = "X-Shell-Path"

	// HeaderTitle carries the path-escaped title of the rendered view.
	HeaderTitle = "X-Shell-Title"
)

const recentSales = 10

// SalesLister reads the sales history for the dashboard.
type SalesLister interface {
	List(ctx context.Context, page pagination.PageRequest, filters sales.Filters) (*pagination.PageResult[sales.Sale], error)
}

type MainData struct {
	Products  []catalog.Product
	Cart      cart.Summary
	Threshold float64
}

type PaymentData struct {
	Cart cart.Summary
}

type AdminData struct {
	Sales     []sales.Sale
	SaleCount int
	Revenue   int64
	Products  []catalog.Product
	Threshold float64
	Error     string
}

type handler struct {
	ts     *web.TemplateSet
	deps   Deps
	guide  GuideData
	logger *slog.Logger
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	sess, err := h.deps.Sessions.Resolve(w, r)
	if err != nil {
		h.logger.Error("resolve session", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var (
		view shell.View
		path string
	)
	if r.Method == http.MethodHead {
		view, path = sess.Current()
	} else {
		view, path = sess.Navigate(r.URL.Path)
	}
	partial := r.Header.Get(HeaderNavigate) == "1"

	w.Header().Set(HeaderPath, path)
	w.Header().Add("Vary", HeaderNavigate)

	data := web.ViewData{Title: defaultTitle, Path: path}

	p, ok := view.(*page)
	if !ok {
		w.Header().Set(HeaderTitle, url.PathEscape(data.Title))
		if partial {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			return
		}
		if err := h.ts.RenderEmpty(w, layout, data); err != nil {
			h.logger.Error("render layout", "path", path, "error", err)
		}
		return
	}

	data.Title = p.def.Title
	data.Data = h.load(r.Context(), p.def.Route, sess)
	w.Header().Set(HeaderTitle, url.PathEscape(data.Title))

	if partial {
		err = h.ts.RenderFragment(w, p.def.Template, data)
	} else {
		err = h.ts.Render(w, layout, p.def.Template, data)
	}
	if err != nil {
		h.logger.Error("render view", "view", p.def.Template, "error", err)
	}
}

func (h *handler) load(ctx context.Context, route string, sess *session.Session) any {
	switch route {
	case "/":
		return MainData{
			Products:  h.deps.Catalog.List(),
			Cart:      sess.Cart.Summary(),
			Threshold: h.deps.Threshold,
		}
	case "/guide":
		return h.guide
	case "/payment":
		return PaymentData{Cart: sess.Cart.Summary()}
	case "/admin":
		return h.loadAdmin(ctx)
	}
	return nil
}

func (h *handler) loadAdmin(ctx context.Context) AdminData {
	data := AdminData{
		Products:  h.deps.Catalog.List(),
		Threshold: h.deps.Threshold,
	}

	result, err := h.deps.Sales.List(ctx, pagination.PageRequest{Page: 1, PageSize: recentSales}, sales.Filters{})
	if err != nil {
		h.logger.Error("list sales", "error", err)
		data.Error = "매출 내역을 불러오지 못했습니다."
		return data
	}

	data.Sales = result.Data
	data.SaleCount = result.Total
	for _, s := range result.Data {
		data.Revenue += s.Total
	}
	return data
}
