package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ddbb-bakery/pos/pkg/module"
)

func echoPath(tag string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tag + ":" + r.URL.Path))
	})
}

func TestRouterMount(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath("api")))
	router.Mount(module.New("", echoPath("app")))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	tests := []struct {
		path string
		want string
	}{
		{"/", "app:/"},
		{"/guide", "app:/guide"},
		{"/api/cart", "api:/cart"},
		{"/api", "api:"},
		{"/healthz", "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	if len(router.Modules()) != 2 {
		t.Errorf("Modules() = %d, want 2", len(router.Modules()))
	}
}

func TestModuleUse(t *testing.T) {
	m := module.New("/api/", echoPath("api"))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "api")
			next.ServeHTTP(w, r)
		})
	})

	if m.Prefix() != "/api" {
		t.Errorf("Prefix() = %q, want /api", m.Prefix())
	}

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	if w.Result().Header.Get("X-Module") != "api" {
		t.Error("module middleware was not applied")
	}
}
