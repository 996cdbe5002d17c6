// Package web provides infrastructure for serving server-rendered views.
// Views are declared as an ordered route table of ViewDef descriptors that
// map URL patterns to templates. Matching is first-match in declaration order,
// named segments can be forwarded to the view, and individual views can defer
// template parsing until their first visit.
package web

import (
	"errors"
	"net/http"
)

// Route table errors.
var (
	ErrDuplicateName   = errors.New("duplicate view name")
	ErrDuplicateRoute  = errors.New("duplicate route pattern")
	ErrInvalidPattern  = errors.New("invalid route pattern")
	ErrMissingName     = errors.New("view name required")
	ErrMissingTemplate = errors.New("view template required")
	ErrMissingParam    = errors.New("missing route parameter")
	ErrUnknownView     = errors.New("unknown view")
)

// ErrNotFound is returned by a DataFunc when the resource a view renders does not exist.
// The view is answered with the 404 error view.
var ErrNotFound = errors.New("not found")

// DataFunc loads the view model for a matched view. Params holds the named
// segments when the view forwards props and is nil otherwise.
type DataFunc func(r *http.Request, params Params) (any, error)

// ViewDef describes a single view: its route pattern, logical name, template,
// and how matched parameters and template loading are handled.
type ViewDef struct {
	Name     string
	Route    string
	Template string
	Title    string
	Bundle   string

	// Props forwards named segments captured from Route to the view.
	Props bool

	// Lazy defers parsing the template until the view is first rendered.
	Lazy bool

	Data DataFunc
}

// Params holds the named segments captured from a matched route.
type Params map[string]string

// Get returns the value of the named segment, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Match is the result of resolving a path against a Table.
type Match struct {
	View   ViewDef
	Params Params
}

// Props returns the captured parameters if the view forwards them, otherwise nil.
func (m Match) Props() Params {
	if !m.View.Props {
		return nil
	}
	return m.Params
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Site     string
	Name     string
	Title    string
	Bundle   string
	BasePath string
	Params   Params
	Data     any
}
