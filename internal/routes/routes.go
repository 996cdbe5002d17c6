// Package routes mounts route groups on a ServeMux under a common prefix.
package routes

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/offer-board/pkg/openapi"
	pkgroutes "github.com/JaimeStill/offer-board/pkg/routes"
)

type routes struct {
	prefix string
	routes []pkgroutes.Route
	groups []pkgroutes.Group
	logger *slog.Logger
}

// New creates a route system whose groups are mounted under prefix.
// Standalone routes keep their absolute patterns.
func New(prefix string, logger *slog.Logger) pkgroutes.System {
	return &routes{prefix: prefix, logger: logger}
}

func (r *routes) Groups() []pkgroutes.Group { return r.groups }

func (r *routes) Routes() []pkgroutes.Route { return r.routes }

func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Build registers every route on a new mux, standalone routes first.
func (r *routes) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range r.routes {
		r.handle(mux, route)
	}
	for _, group := range r.groups {
		for _, route := range group.Flatten(r.prefix) {
			r.handle(mux, route)
		}
	}

	return mux
}

// Describe adds the documented group routes to spec. Paths are relative to
// the prefix, which callers publish as the document's server URL.
func (r *routes) Describe(spec *openapi.Spec) error {
	for _, group := range r.groups {
		if err := group.Document(spec, ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *routes) handle(mux *http.ServeMux, route pkgroutes.Route) {
	pattern := route.Method + " " + route.Pattern
	mux.HandleFunc(pattern, route.Handler)
	r.logger.Debug("route registered", "pattern", pattern, "documented", route.OpenAPI != nil)
}
