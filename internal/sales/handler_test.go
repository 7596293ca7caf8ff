package sales_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/internal/catalog"
	"github.com/ddbb-bakery/pos/internal/sales"
	"github.com/ddbb-bakery/pos/pkg/pagination"
	"github.com/ddbb-bakery/pos/pkg/routes"
	"github.com/google/uuid"
)

type memorySales struct {
	mu    sync.Mutex
	sales []sales.Sale
	fail  error
	delay time.Duration
	page  pagination.PageRequest
}

func (m *memorySales) Checkout(ctx context.Context, sessionID uuid.UUID, lines []cart.Line) (*sales.Sale, error) {
	time.Sleep(m.delay)
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return nil, m.fail
	}
	if len(lines) == 0 {
		return nil, sales.ErrEmptyCart
	}
	s := sales.Sale{ID: uuid.New(), SessionID: sessionID, Lines: lines, CreatedAt: time.Now()}
	for _, l := range lines {
		s.Count += l.Quantity
		s.Total += l.Subtotal
	}
	m.sales = append(m.sales, s)
	return &s, nil
}

func (m *memorySales) List(ctx context.Context, page pagination.PageRequest, filters sales.Filters) (*pagination.PageResult[sales.Sale], error) {
	m.page = page
	r := pagination.NewPageResult(m.sales, len(m.sales), page.Page, page.PageSize)
	return &r, nil
}

func (m *memorySales) Find(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	for _, s := range m.sales {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, sales.ErrNotFound
}

type fixedSession struct {
	id   uuid.UUID
	cart *cart.Cart
}

func (f fixedSession) Checkout(w http.ResponseWriter, r *http.Request) (uuid.UUID, *cart.Cart) {
	return f.id, f.cart
}

func setup(t *testing.T, sys sales.System) (*http.ServeMux, fixedSession) {
	t.Helper()
	c, err := catalog.New(catalog.Defaults, discard())
	if err != nil {
		t.Fatal(err)
	}
	sess := fixedSession{id: uuid.New(), cart: cart.New(c, cart.DefaultThreshold)}

	h := sales.NewHandler(sys, sess, discard(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes()...)
	return mux, sess
}

func TestCheckoutHandler(t *testing.T) {
	sys := &memorySales{}
	mux, sess := setup(t, sys)
	sess.cart.Add("croissant", 2)
	sess.cart.Add("pie", 1)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var sale sales.Sale
	if err := json.NewDecoder(w.Body).Decode(&sale); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sale.Total != 2*3200+4700 || sale.Count != 3 {
		t.Errorf("sale = %+v", sale)
	}
	if sale.SessionID != sess.id {
		t.Errorf("SessionID = %s, want %s", sale.SessionID, sess.id)
	}
	if !sess.cart.Empty() {
		t.Error("cart not cleared after checkout")
	}
}

func TestCheckoutHandlerEmptyCart(t *testing.T) {
	mux, _ := setup(t, &memorySales{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCheckoutHandlerFailureKeepsCart(t *testing.T) {
	mux, sess := setup(t, &memorySales{fail: errors.New("database unavailable")})
	sess.cart.Add("muffin", 1)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if sess.cart.Empty() {
		t.Error("cart cleared after failed checkout")
	}
}

func TestConcurrentCheckoutHandler(t *testing.T) {
	sys := &memorySales{delay: 50 * time.Millisecond}
	mux, sess := setup(t, sys)
	sess.cart.Add("croissant", 1)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))
			codes[i] = w.Code
		}()
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	if created != 1 || len(sys.sales) != 1 {
		t.Errorf("created = %d, sales recorded = %d, want 1 and 1", created, len(sys.sales))
	}
}

func TestListAndFindHandlers(t *testing.T) {
	sys := &memorySales{}
	mux, sess := setup(t, sys)
	sess.cart.Add("cookie", 1)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d", w.Code)
	}
	id := sys.sales[0].ID

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales?page=0&page_size=500", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if sys.page.Page != 1 || sys.page.PageSize != 100 {
		t.Errorf("page request = %+v, want normalized 1/100", sys.page)
	}

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"found", "/sales/" + id.String(), http.StatusOK},
		{"missing", "/sales/" + uuid.NewString(), http.StatusNotFound},
		{"bad id", "/sales/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}
