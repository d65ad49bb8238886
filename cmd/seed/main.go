package main

import (
	"context"
	"database/sql"
	"flag"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripvote/internal/adapters/observability"
	"tripvote/internal/app"
	"tripvote/internal/shared"
	mysqlrepo "tripvote/internal/storage/mysql"
)

func main() {
	reset := flag.Bool("reset", true, "delete every destination (and its votes and comments) first")
	workers := flag.Int("workers", 4, "concurrent inserts")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	repo := mysqlrepo.New(db)
	svc := app.NewDestinationService(repo)

	if *reset {
		existing, err := repo.ListDestinations(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("list destinations failed")
		}
		for _, d := range existing {
			if err := svc.Delete(ctx, d.ID); err != nil {
				log.Fatal().Err(err).Str("id", d.ID).Msg("delete failed")
			}
		}
		log.Info().Int("deleted", len(existing)).Msg("cleared destinations")
	}

	sem := semaphore.NewWeighted(int64(max(*workers, 1)))
	var wg sync.WaitGroup
	for _, payload := range shared.SeedDestinations {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(p map[string]any) {
			defer wg.Done()
			defer sem.Release(1)

			d, err := svc.Create(ctx, p)
			if err != nil {
				log.Warn().Err(err).Interface("name", p["name"]).Msg("seed failed")
				return
			}
			log.Info().Str("id", d.ID).Str("name", d.Name).Msg("seeded")
		}(payload)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
