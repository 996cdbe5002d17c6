package web

import (
	"net/http"
	"strings"
)

// Router dispatches GET and HEAD requests through a view Table before falling
// back to a ServeMux for assets and other handlers. Requests that match
// neither are answered by the fallback handler when one is set.
type Router struct {
	mux      *http.ServeMux
	table    *Table
	render   RenderFunc
	fallback http.HandlerFunc
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler on the underlying ServeMux.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function on the underlying ServeMux.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler for requests no view or mux pattern matches.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// Views attaches a view table and the function used to render its matches.
func (r *Router) Views(table *Table, render RenderFunc) {
	r.table = table
	r.render = render
}

// ServeHTTP serves GET and HEAD from the view table, then the mux. Other
// methods on a view path the mux does not handle answer 405.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	viewMethod := req.Method == http.MethodGet || req.Method == http.MethodHead
	if r.table != nil && viewMethod {
		if m, ok := r.table.Match(req.URL.Path); ok {
			r.render(w, req, m)
			return
		}
	}

	_, pattern := r.mux.Handler(req)
	if pattern == "" {
		if r.table != nil && !viewMethod {
			if _, ok := r.table.Match(req.URL.Path); ok {
				w.Header().Set("Allow", r.allow(req))
				http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
				return
			}
		}
		if r.fallback != nil {
			r.fallback(w, req)
			return
		}
	}

	r.mux.ServeHTTP(w, req)
}

var muxMethods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

// allow lists GET and HEAD plus the methods the mux accepts for req's path.
func (r *Router) allow(req *http.Request) string {
	methods := []string{http.MethodGet, http.MethodHead}
	for _, m := range muxMethods {
		alt := req.Clone(req.Context())
		alt.Method = m
		if _, pattern := r.mux.Handler(alt); pattern != "" {
			methods = append(methods, m)
		}
	}
	return strings.Join(methods, ", ")
}
