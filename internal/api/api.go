// Package api assembles the JSON API: domain handlers under the API base
// path, the OpenAPI document describing them, and CORS.
package api

import (
	"net/http"

	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/internal/routes"
	"github.com/JaimeStill/offer-board/pkg/middleware"
	"github.com/JaimeStill/offer-board/pkg/openapi"
	pkgroutes "github.com/JaimeStill/offer-board/pkg/routes"
)

// New builds the API handler. The OpenAPI document is served at
// <base path>/openapi.json.
func New(cfg *config.Config, runtime *Runtime, domain *Domain) (http.Handler, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.Components = openapi.NewComponents()

	r := routes.New(cfg.API.BasePath, runtime.Logger)
	if err := registerRoutes(r, spec, runtime, domain); err != nil {
		return nil, err
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	r.RegisterRoute(pkgroutes.Route{
		Method:  http.MethodGet,
		Pattern: cfg.API.BasePath + "/openapi.json",
		Handler: openapi.ServeSpec(specBytes),
	})

	mw := middleware.New()
	mw.Use(middleware.CORS(&cfg.API.CORS))

	return mw.Apply(r.Build()), nil
}
