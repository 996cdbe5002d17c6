package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// RenderFunc renders a resolved view match.
type RenderFunc func(w http.ResponseWriter, r *http.Request, m Match)

type compiledView struct {
	def    ViewDef
	once   sync.Once
	tmpl   *template.Template
	err    error
	loaded atomic.Bool
}

// TemplateSet holds the templates for every view of a Table plus a set of
// error views keyed by HTTP status. Eager views are parsed at construction so
// template errors fail fast at startup; lazy views are parsed once, on first render.
type TemplateSet struct {
	layouts  *template.Template
	viewFS   fs.FS
	views    map[string]*compiledView
	errors   map[int]string
	basePath string
	site     string
	table    *Table
}

// NewTemplateSet parses the layout templates and clones them for each view in
// the table and each error view. The basePath is included in the ViewData of
// every render and prefixed to URLs built with the "path" template func.
func NewTemplateSet(
	layoutFS, viewFS fs.FS,
	layoutGlob, viewSubdir, basePath string,
	table *Table,
	errorViews map[int]ViewDef,
) (*TemplateSet, error) {
	ts := &TemplateSet{
		views:    make(map[string]*compiledView, table.Len()+len(errorViews)),
		errors:   make(map[int]string, len(errorViews)),
		basePath: strings.TrimSuffix(basePath, "/"),
		table:    table,
	}

	layouts, err := template.New("").Funcs(ts.funcs()).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	ts.layouts = layouts

	sub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}
	ts.viewFS = sub

	for _, def := range table.Views() {
		if err := ts.add(def); err != nil {
			return nil, err
		}
	}

	for status, def := range errorViews {
		def.Lazy = false
		if _, ok := ts.views[def.Name]; ok {
			return nil, fmt.Errorf("error view %s: %w", def.Name, ErrDuplicateName)
		}
		if err := ts.add(def); err != nil {
			return nil, err
		}
		ts.errors[status] = def.Name
	}

	return ts, nil
}

// BasePath returns the base path prefixed to generated URLs.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// SetSite sets the site name passed to every render as ViewData.Site.
func (ts *TemplateSet) SetSite(name string) {
	ts.site = name
}

// View returns a ViewData for the named view with the site and base path filled in.
func (ts *TemplateSet) View(name string) ViewData {
	data := ViewData{Site: ts.site, Name: name, BasePath: ts.basePath}
	if v, ok := ts.views[name]; ok {
		data.Title = v.def.Title
		data.Bundle = v.def.Bundle
	}
	return data
}

// Loaded reports whether the named view's template has been parsed.
func (ts *TemplateSet) Loaded(name string) bool {
	v, ok := ts.views[name]
	return ok && v.loaded.Load()
}

// Render executes the named layout for the named view with the given data.
// Output is buffered so a failing template never produces a partial response.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewName string, data ViewData) error {
	return ts.RenderStatus(w, layoutName, viewName, http.StatusOK, data)
}

// RenderStatus is Render with an explicit response status. Nothing is written
// when the view fails to render.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, layoutName, viewName string, status int, data ViewData) error {
	t, err := ts.template(viewName)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewName, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// RenderError writes the error view registered for status, or a plain
// text response when none is registered or it fails to render.
func (ts *TemplateSet) RenderError(w http.ResponseWriter, layoutName string, status int) {
	name, ok := ts.errors[status]
	if !ok {
		http.Error(w, http.StatusText(status), status)
		return
	}

	data := ts.View(name)

	t, err := ts.template(name)
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// ErrorHandler returns an HTTP handler that renders the error view for status.
func (ts *TemplateSet) ErrorHandler(layoutName string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts.RenderError(w, layoutName, status)
	}
}

// Serve returns a RenderFunc that loads the matched view's data and renders it
// inside the named layout. Loader errors wrapping ErrNotFound render the 404
// view; any other failure is logged and renders the 500 view.
func (ts *TemplateSet) Serve(layoutName string, logger *slog.Logger) RenderFunc {
	return func(w http.ResponseWriter, r *http.Request, m Match) {
		props := m.Props()
		data := ts.View(m.View.Name)
		data.Params = props

		if m.View.Data != nil {
			model, err := m.View.Data(r, props)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					logger.Debug("view data not found", "view", m.View.Name, "path", r.URL.Path, "error", err)
					ts.RenderError(w, layoutName, http.StatusNotFound)
					return
				}
				logger.Error("view data failed", "view", m.View.Name, "path", r.URL.Path, "error", err)
				ts.RenderError(w, layoutName, http.StatusInternalServerError)
				return
			}
			data.Data = model
		}

		if err := ts.Render(w, layoutName, m.View.Name, data); err != nil {
			logger.Error("view render failed", "view", m.View.Name, "error", err)
			ts.RenderError(w, layoutName, http.StatusInternalServerError)
		}
	}
}

func (ts *TemplateSet) add(def ViewDef) error {
	v := &compiledView{def: def}
	ts.views[def.Name] = v

	if def.Lazy {
		return nil
	}

	if _, err := ts.load(v); err != nil {
		return err
	}
	return nil
}

func (ts *TemplateSet) template(name string) (*template.Template, error) {
	v, ok := ts.views[name]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", name)
	}
	return ts.load(v)
}

func (ts *TemplateSet) load(v *compiledView) (*template.Template, error) {
	v.once.Do(func() {
		v.tmpl, v.err = ts.parse(v.def.Template)
		v.loaded.Store(v.err == nil)
	})
	return v.tmpl, v.err
}

func (ts *TemplateSet) parse(file string) (*template.Template, error) {
	t, err := ts.layouts.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layouts for %s: %w", file, err)
	}
	if _, err := t.ParseFS(ts.viewFS, file); err != nil {
		return nil, fmt.Errorf("parse template: %s: %w", file, err)
	}
	return t, nil
}

func (ts *TemplateSet) funcs() template.FuncMap {
	return template.FuncMap{
		"path": ts.path,
	}
}

// path builds the URL of a named view from alternating key/value arguments.
func (ts *TemplateSet) path(name string, pairs ...any) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("path %s: odd number of arguments", name)
	}

	params := make(Params, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("path %s: parameter name must be a string", name)
		}
		params[key] = fmt.Sprint(pairs[i+1])
	}

	p, err := ts.table.URL(name, params)
	if err != nil {
		return "", err
	}
	return ts.basePath + p, nil
}
