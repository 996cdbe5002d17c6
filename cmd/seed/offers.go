package main

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/JaimeStill/offer-board/internal/offers"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&OfferSeeder{})
}

// OfferSeeder implements Seeder for job offers in the upstream search format.
// It loads seed data from an embedded file or an external file path.
type OfferSeeder struct {
	file string
}

// Name returns "offers" as the seeder identifier.
func (s *OfferSeeder) Name() string {
	return "offers"
}

// Description returns a human-readable description of this seeder.
func (s *OfferSeeder) Description() string {
	return "Seeds job offers from an offer search response"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *OfferSeeder) SetFile(path string) {
	s.file = path
}

// Seed loads offers and saves them with upsert semantics for idempotent execution.
func (s *OfferSeeder) Seed(ctx context.Context, tx *sql.Tx) (int, error) {
	data, err := s.loadSeedData()
	if err != nil {
		return 0, err
	}

	for _, o := range data {
		if err := o.Validate(); err != nil {
			return 0, fmt.Errorf("offer %q: %w", o.ID, err)
		}
		if _, err := offers.Upsert(ctx, tx, o); err != nil {
			return 0, fmt.Errorf("save offer %s: %w", o.ID, err)
		}
	}

	return len(data), nil
}

func (s *OfferSeeder) loadSeedData() ([]offers.Offer, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/offers.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	return offers.DecodeUpstream(bytes.NewReader(content))
}
