// Package app provides the web application module with embedded templates and assets.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/offer-board/internal/offers"
	"github.com/JaimeStill/offer-board/pkg/pagination"
	"github.com/JaimeStill/offer-board/pkg/web"
)

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

//go:embed robots.txt
var robots []byte

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
}

var errorViews = map[int]web.ViewDef{
	http.StatusNotFound:            {Name: "not-found", Template: "404.html", Title: "Page introuvable"},
	http.StatusInternalServerError: {Name: "error", Template: "500.html", Title: "Erreur"},
}

// Config holds the settings the app needs from the service configuration.
type Config struct {
	BasePath   string
	SiteName   string
	MaxForm    int64
	Pagination pagination.Config
}

// App is the server-rendered offer board.
type App struct {
	table     *web.Table
	templates *web.TemplateSet
	router    *web.Router
}

// New builds the route table, parses the eager templates, and wires the router.
func New(sys offers.System, cfg Config, logger *slog.Logger) (*App, error) {
	p := &pages{
		sys:        sys,
		pagination: cfg.Pagination,
		maxForm:    cfg.MaxForm,
		logger:     logger.With("module", "app"),
	}

	table, err := routeTable(p)
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		table,
		errorViews,
	)
	if err != nil {
		return nil, err
	}
	ts.SetSite(cfg.SiteName)
	p.templates = ts

	a := &App{table: table, templates: ts}
	a.router = a.buildRouter(p)
	return a, nil
}

// Table returns the app's route table.
func (a *App) Table() *web.Table {
	return a.table
}

// Loaded reports whether the named view's template has been parsed.
func (a *App) Loaded(name string) bool {
	return a.templates.Loaded(name)
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) buildRouter(p *pages) *web.Router {
	r := web.NewRouter()
	r.Views(a.table, a.templates.Serve(layout, p.logger))
	r.SetFallback(a.templates.ErrorHandler(layout, http.StatusNotFound))

	r.HandleFunc("POST /offre/{id}", p.match)
	r.Handle("GET /public/", web.DistServer(publicFS, "public", "/public/"))
	r.HandleFunc("GET /robots.txt", web.ServeEmbeddedFile(robots, "text/plain; charset=utf-8"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
