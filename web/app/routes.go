package app

import "github.com/JaimeStill/offer-board/pkg/web"

// routeTable declares the app views. The first matching route wins.
func routeTable(p *pages) (*web.Table, error) {
	return web.NewTable(
		web.ViewDef{
			Name:     "home",
			Route:    "/",
			Template: "home.html",
			Title:    "Offres d'emploi",
			Data:     p.home,
		},
		web.ViewDef{
			Name:     "about",
			Route:    "/about",
			Template: "about.html",
			Title:    "À propos",
			Lazy:     true,
		},
		web.ViewDef{
			Name:     "offer-detail",
			Route:    "/offre/{id}",
			Template: "offer.html",
			Title:    "Détail de l'offre",
			Props:    true,
			Data:     p.offer,
		},
	)
}
