package web_test

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ddbb-bakery/pos/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var testViews = []web.ViewDef{
	{Route: "/", Template: "home.html", Title: "Home"},
	{Route: "/about", Template: "about.html", Title: "About"},
}

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/pos", testViews)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSetErrors(t *testing.T) {
	tests := []struct {
		name  string
		glob  string
		dir   string
		views []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"missing template", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "missing.html"}}},
		{"invalid view dir", "testdata/layouts/*.html", "../views", testViews},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := web.NewTemplateSet(layoutFS, viewFS, tt.glob, tt.dir, "", tt.views); err == nil {
				t.Error("NewTemplateSet() should return error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, "test.html", "about.html", web.ViewData{Title: "About", Path: "/about", Data: "fresh bread"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	resp := w.Result()
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"<!DOCTYPE html>", "<title>About</title>", "About Page", "fresh bread", `data-basepath="/pos"`, `data-path="/about"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts := newSet(t)
	if err := ts.Render(httptest.NewRecorder(), "test.html", "missing.html", web.ViewData{}); err == nil {
		t.Error("Render() with unknown view should return error")
	}
	if ts.Has("missing.html") {
		t.Error("Has(missing.html) = true")
	}
	if !ts.Has("home.html") {
		t.Error("Has(home.html) = false")
	}
}

func TestRenderEmpty(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	if err := ts.RenderEmpty(w, "test.html", web.ViewData{Title: "Bakery", Path: "/unknown"}); err != nil {
		t.Fatalf("RenderEmpty() error = %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, `<main id="outlet" data-path="/unknown"></main>`) {
		t.Errorf("outlet is not empty: %s", body)
	}
	if strings.Contains(body, "Home Page") || strings.Contains(body, "About Page") {
		t.Error("empty render leaked view content")
	}
}

func TestRenderFragment(t *testing.T) {
	ts := newSet(t)

	var buf bytes.Buffer
	if err := ts.RenderFragment(&buf, "home.html", web.ViewData{}); err != nil {
		t.Fatalf("RenderFragment() error = %v", err)
	}

	got := strings.TrimSpace(buf.String())
	if got != "<h1>Home Page</h1>" {
		t.Errorf("fragment = %q, want only the content block", got)
	}
}

func TestViewsDoNotShareContent(t *testing.T) {
	ts := newSet(t)

	for _, v := range testViews {
		w := httptest.NewRecorder()
		if err := ts.Render(w, "test.html", v.Template, web.ViewData{Title: v.Title}); err != nil {
			t.Fatalf("Render(%s) error = %v", v.Template, err)
		}
		body := w.Body.String()
		if v.Template == "home.html" && strings.Contains(body, "About Page") {
			t.Error("home view rendered about content")
		}
		if v.Template == "about.html" && strings.Contains(body, "Home Page") {
			t.Error("about view rendered home content")
		}
	}
}

func TestWithFuncs(t *testing.T) {
	funcs := template.FuncMap{"shout": strings.ToUpper}
	views := []web.ViewDef{{Route: "/shout", Template: "shout.html"}}

	if _, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "", views); err == nil {
		t.Error("parsing a view with an undefined func should fail")
	}

	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "", views, web.WithFuncs(funcs))
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}

	var buf bytes.Buffer
	if err := ts.RenderFragment(&buf, "shout.html", web.ViewData{}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "FRESH" {
		t.Errorf("fragment = %q, want FRESH", got)
	}
}
