package main

import (
	"net/http"

	"github.com/JaimeStill/offer-board/internal/api"
	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/internal/infrastructure"
	"github.com/JaimeStill/offer-board/web/app"
)

// Modules holds the mounted HTTP modules with their mount points.
type Modules struct {
	Domain *api.Domain

	APIPath string
	API     http.Handler

	AppPath string
	App     http.Handler
}

// NewModules builds the domain systems and the API and app handlers.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime)

	apiModule, err := api.New(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	appModule, err := app.New(domain.Offers, app.Config{
		BasePath:   cfg.App.BasePath,
		SiteName:   cfg.App.SiteName,
		MaxForm:    cfg.API.MaxBodyBytes(),
		Pagination: cfg.API.Pagination,
	}, infra.Logger)
	if err != nil {
		return nil, err
	}

	return &Modules{
		Domain:  domain,
		APIPath: cfg.API.BasePath,
		API:     apiModule,
		AppPath: cfg.App.BasePath,
		App:     appModule,
	}, nil
}

// Mount registers each module on mux under its base path.
func (m *Modules) Mount(mux *http.ServeMux) {
	mux.Handle(m.APIPath+"/", m.API)

	if m.AppPath == "" {
		mux.Handle("/", m.App)
		return
	}
	app := http.StripPrefix(m.AppPath, m.App)
	mux.Handle(m.AppPath, app)
	mux.Handle(m.AppPath+"/", app)
}
