package web

import (
	"fmt"
	"net/url"
)

type entry struct {
	view    ViewDef
	pattern pattern
}

// Table is an ordered, immutable set of view descriptors. Lookups resolve in
// declaration order, so earlier views win when patterns overlap.
type Table struct {
	entries []entry
	byName  map[string]int
}

// NewTable validates and compiles the given views. View names must be unique,
// every view needs a template, and each route pattern must be well formed and
// declared once.
func NewTable(views ...ViewDef) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(views)),
		byName:  make(map[string]int, len(views)),
	}

	routes := make(map[string]string, len(views))

	for _, v := range views {
		if v.Name == "" {
			return nil, fmt.Errorf("route %q: %w", v.Route, ErrMissingName)
		}
		if _, ok := t.byName[v.Name]; ok {
			return nil, fmt.Errorf("view %s: %w", v.Name, ErrDuplicateName)
		}
		if v.Template == "" {
			return nil, fmt.Errorf("view %s: %w", v.Name, ErrMissingTemplate)
		}

		p, err := compilePattern(v.Route)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", v.Name, err)
		}

		key := p.shape()
		if prev, ok := routes[key]; ok {
			return nil, fmt.Errorf("view %s: %w: %s shadowed by %s", v.Name, ErrDuplicateRoute, v.Route, prev)
		}
		routes[key] = v.Name

		t.byName[v.Name] = len(t.entries)
		t.entries = append(t.entries, entry{view: v, pattern: p})
	}

	return t, nil
}

// Match resolves path to the first view whose pattern matches it.
func (t *Table) Match(path string) (Match, bool) {
	for _, e := range t.entries {
		if params, ok := e.pattern.match(path); ok {
			return Match{View: e.view, Params: params}, true
		}
	}
	return Match{}, false
}

// Lookup returns the view registered under name.
func (t *Table) Lookup(name string) (ViewDef, bool) {
	i, ok := t.byName[name]
	if !ok {
		return ViewDef{}, false
	}
	return t.entries[i].view, true
}

// URL builds the path of the named view, substituting params into its named segments.
func (t *Table) URL(name string, params Params) (string, error) {
	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	path, err := t.entries[i].pattern.build(params)
	if err != nil {
		return "", fmt.Errorf("view %s: %w", name, err)
	}
	return path, nil
}

// ParamNames returns the named segments of the view's route in declaration order.
func (t *Table) ParamNames(name string) []string {
	i, ok := t.byName[name]
	if !ok {
		return nil
	}
	return t.entries[i].pattern.params()
}

// Views returns a copy of the view descriptors in declaration order.
func (t *Table) Views() []ViewDef {
	views := make([]ViewDef, len(t.entries))
	for i, e := range t.entries {
		views[i] = e.view
	}
	return views
}

// Len returns the number of views in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func escapeSegment(s string) string {
	return url.PathEscape(s)
}
