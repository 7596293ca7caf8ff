package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ddbb-bakery/pos/pkg/middleware"
)

func corsHandler(cfg middleware.CORSConfig) http.Handler {
	cfg.Finalize(nil)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.CORS(&cfg)(ok)
}

func TestCORSDisabled(t *testing.T) {
	h := corsHandler(middleware.CORSConfig{Origins: []string{"http://kiosk.local"}})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "http://kiosk.local")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want none", got)
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	h := corsHandler(middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://kiosk.local"},
		AllowCredentials: true,
	})

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed", "http://kiosk.local", "http://kiosk.local"},
		{"other", "http://evil.example", ""},
		{"none", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.want)
			}
			if w.Code != http.StatusOK {
				t.Errorf("status = %d", w.Code)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := corsHandler(middleware.CORSConfig{Enabled: true, Origins: []string{"http://kiosk.local"}})

	r := httptest.NewRequest(http.MethodOptions, "/cart/detections", nil)
	r.Header.Set("Origin", "http://kiosk.local")
	r.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("missing Allow-Methods")
	}
	if w.Header().Get("Access-Control-Max-Age") != "3600" {
		t.Errorf("Max-Age = %q", w.Header().Get("Access-Control-Max-Age"))
	}
}

func TestCORSConfigEnv(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.local, http://b.local ,")

	var cfg middleware.CORSConfig
	cfg.Finalize(&middleware.CORSEnv{Enabled: "TEST_CORS_ENABLED", Origins: "TEST_CORS_ORIGINS"})

	if !cfg.Enabled {
		t.Error("Enabled = false")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.local" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
}
