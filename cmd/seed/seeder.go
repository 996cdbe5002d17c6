// Package main provides the seed command. Seeders write their data inside a
// transaction so a failed run leaves the database untouched.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/JaimeStill/offer-board/pkg/repository"
)

// Seeder populates one domain's data and reports how many rows it wrote.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) (int, error)
}

var seeders = map[string]Seeder{}

// registerSeeder adds s to the registry. Seeders register from init.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// runSeeders runs the given seeders in order within one transaction and
// returns the rows written per seeder.
func runSeeders(ctx context.Context, db *sql.DB, list ...Seeder) (map[string]int, error) {
	return repository.WithTx(ctx, db, func(tx *sql.Tx) (map[string]int, error) {
		counts := make(map[string]int, len(list))
		for _, s := range list {
			n, err := s.Seed(ctx, tx)
			if err != nil {
				return nil, fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			counts[s.Name()] = n
		}
		return counts, nil
	})
}

// runSeeder runs the named seeder.
func runSeeder(ctx context.Context, db *sql.DB, name string) (int, error) {
	s, ok := getSeeder(name)
	if !ok {
		return 0, fmt.Errorf("seeder not found: %s", name)
	}
	counts, err := runSeeders(ctx, db, s)
	if err != nil {
		return 0, err
	}
	return counts[name], nil
}
