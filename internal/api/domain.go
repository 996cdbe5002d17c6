package api

import "github.com/JaimeStill/offer-board/internal/offers"

// Domain holds the domain systems served by the API.
type Domain struct {
	Offers offers.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Offers: offers.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
