package routes

import (
	"net/http"

	"github.com/JaimeStill/offer-board/pkg/openapi"
)

// Route binds a method and pattern to a handler. Patterns inside a Group are
// relative to the group prefix; "" addresses the prefix itself.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Flatten returns every route in the group and its children with full patterns,
// each prefixed by parent.
func (g Group) Flatten(parent string) []Route {
	prefix := parent + g.Prefix
	out := make([]Route, 0, len(g.Routes))

	for _, r := range g.Routes {
		out = append(out, Route{
			Method:  r.Method,
			Pattern: prefix + r.Pattern,
			Handler: r.Handler,
			OpenAPI: r.OpenAPI,
		})
	}
	for _, child := range g.Children {
		out = append(out, child.Flatten(prefix)...)
	}
	return out
}

// Document adds the operation of every documented route in the group and its
// children to spec, at paths prefixed by parent. Operations without tags
// take the tags of the nearest group that has some.
func (g Group) Document(spec *openapi.Spec, parent string) error {
	return g.document(spec, parent, nil)
}

func (g Group) document(spec *openapi.Spec, parent string, inherited []string) error {
	prefix := parent + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = inherited
	}

	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := *r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		if err := spec.AddOperation(prefix+r.Pattern, r.Method, &op); err != nil {
			return err
		}
	}

	for _, child := range g.Children {
		if err := child.document(spec, prefix, tags); err != nil {
			return err
		}
	}
	return nil
}
