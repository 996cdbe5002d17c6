// Package offers stores job offers and scores CVs against them by soft skills.
package offers

import (
	"context"

	"github.com/JaimeStill/offer-board/pkg/pagination"
)

// System defines the interface for offer storage and matching.
type System interface {
	// List returns a page of offers matching the search and filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Offer], error)

	// Find retrieves an offer by its upstream ID.
	// Returns ErrInvalidID for malformed IDs and ErrNotFound if the offer does not exist.
	Find(ctx context.Context, id string) (*Offer, error)

	// Save inserts the offer or replaces the stored one with the same ID.
	Save(ctx context.Context, offer Offer) (*Offer, error)

	// SaveAll upserts every offer in a single transaction and returns the count.
	SaveAll(ctx context.Context, offers []Offer) (int, error)

	// Match scores cvText against the offer's soft-skill profile.
	// Returns ErrEmptyCV for blank text and ErrNotFound if the offer does not exist.
	Match(ctx context.Context, id, cvText string) (*MatchResult, error)
}
