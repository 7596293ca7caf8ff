// Package web renders server-side views from embedded templates.
//
// Every view template is parsed once at startup into its own clone of the
// layout set, so a view can be rendered either inside the layout or on its
// own as a fragment for in-place navigation.
package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// ContentBlock is the template name each view defines and each layout
// renders into its outlet.
const ContentBlock = "content"

// ViewDef declares a view: the route it answers, its template file and title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
}

// ViewData is passed to every template execution.
type ViewData struct {
	Title    string
	BasePath string
	Path     string
	Data     any
}

// Option configures a TemplateSet.
type Option func(*template.Template)

// WithFuncs makes funcs available to every layout and view.
func WithFuncs(funcs template.FuncMap) Option {
	return func(t *template.Template) {
		t.Funcs(funcs)
	}
}

// TemplateSet holds the parsed layouts and one template per view.
type TemplateSet struct {
	layouts  *template.Template
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses layouts matching layoutGlob, then parses each view from
// viewDir on top of a clone of the layouts.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewDir, basePath string, views []ViewDef, opts ...Option) (*TemplateSet, error) {
	root := template.New("")
	for _, opt := range opts {
		opt(root)
	}

	layouts, err := root.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	sub, err := fs.Sub(viewFS, viewDir)
	if err != nil {
		return nil, fmt.Errorf("view dir %s: %w", viewDir, err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(sub, v.Template); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		layouts:  layouts,
		views:    parsed,
		basePath: basePath,
	}, nil
}

// BasePath returns the URL prefix templates use for links.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Has reports whether view was parsed.
func (ts *TemplateSet) Has(view string) bool {
	_, ok := ts.views[view]
	return ok
}

// Render writes layout with view in its outlet.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}
	data.BasePath = ts.basePath
	setHTML(w)
	return t.ExecuteTemplate(w, layout, data)
}

// RenderEmpty writes layout with an empty outlet.
func (ts *TemplateSet) RenderEmpty(w http.ResponseWriter, layout string, data ViewData) error {
	data.BasePath = ts.basePath
	setHTML(w)
	return ts.layouts.ExecuteTemplate(w, layout, data)
}

// RenderFragment writes only the view's content block.
func (ts *TemplateSet) RenderFragment(w io.Writer, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}
	data.BasePath = ts.basePath
	if rw, ok := w.(http.ResponseWriter); ok {
		setHTML(rw)
	}
	return t.ExecuteTemplate(w, ContentBlock, data)
}

func setHTML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
