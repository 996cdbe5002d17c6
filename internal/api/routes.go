package api

import (
	"github.com/JaimeStill/offer-board/internal/offers"
	"github.com/JaimeStill/offer-board/pkg/openapi"
	"github.com/JaimeStill/offer-board/pkg/routes"
)

// registerRoutes adds every domain group to r, describes them in spec, and
// registers the schemas their operations reference.
func registerRoutes(r routes.System, spec *openapi.Spec, runtime *Runtime, domain *Domain) error {
	offersHandler := offers.NewHandler(domain.Offers, runtime.Logger, runtime.Pagination, runtime.MaxBody)
	r.RegisterGroup(offersHandler.Routes())

	if err := r.Describe(spec); err != nil {
		return err
	}
	spec.Components.AddSchemas(offers.Spec.Schemas())
	return nil
}
