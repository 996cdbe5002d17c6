package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/internal/migrations"
	"github.com/JaimeStill/offer-board/pkg/logging"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string (defaults to config.toml)")
		all     = flag.Bool("all", false, "Run all seeders")
		offers  = flag.Bool("offers", false, "Seed job offers")
		file    = flag.String("file", "", "External seed file (overrides embedded)")
		migrate = flag.Bool("migrate", false, "Apply schema migrations before seeding")
		list    = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*offers {
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-offers] [-file <path>] [-migrate] [-list]")
		flag.PrintDefaults()
		return
	}

	connStr, err := resolveDSN(*dsn)
	if err != nil {
		log.Fatalf("database connection string required: %v", err)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *migrate {
		logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText})
		if err := migrations.Up(db, logger); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if *file != "" {
		if seeder, ok := getSeeder("offers"); ok {
			seeder.(*OfferSeeder).SetFile(*file)
		}
	}

	ctx := context.Background()

	switch {
	case *all:
		counts, err := runSeeders(ctx, db, listSeeders()...)
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		for _, s := range listSeeders() {
			fmt.Printf("%s: %d rows\n", s.Name(), counts[s.Name()])
		}
		fmt.Println("all seeders completed successfully")

	case *offers:
		n, err := runSeeder(ctx, db, "offers")
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("offers seeded successfully: %d rows\n", n)
	}
}

// resolveDSN prefers the flag, then DATABASE_DSN, then the service configuration.
func resolveDSN(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		return v, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("use -dsn, %s, or a config file: %w", EnvDatabaseDSN, err)
	}
	if err := cfg.Finalize(); err != nil {
		return "", fmt.Errorf("finalize config: %w", err)
	}
	return cfg.Database.Dsn(), nil
}
