package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripvote/internal/adapters/geoapi"
	server "tripvote/internal/adapters/http_server"
	"tripvote/internal/adapters/observability"
	"tripvote/internal/adapters/pagemeta"
	redisad "tripvote/internal/adapters/redis"
	"tripvote/internal/app"
	"tripvote/internal/shared"
	mysqlrepo "tripvote/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	if cfg.AutoMigrate {
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	// redis
	rdb := redisad.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; lookups run uncached and voter ids will fail")
	}

	// deps
	repo := mysqlrepo.New(db)
	handlers := &server.Handlers{
		Destinations: app.NewDestinationService(repo),
		Votes:        app.NewVoteService(repo, repo),
		Comments:     app.NewCommentService(repo, repo),
		Lookup: app.NewLookupService(
			geoapi.NewNominatim(cfg.NominatimBase, cfg.GeocoderRPS),
			geoapi.NewOpenMeteo(cfg.OpenMeteoBase, cfg.WeatherRPS),
			redisad.New(rdb),
			cfg.CacheTTL(),
		),
		Images: app.NewImageService(pagemeta.New()),
		Voters: app.NewVoterService(redisad.NewVoterTokens(rdb)),
	}

	// http
	srv := server.New(cfg.HTTPTimeout())
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	servers := []*http.Server{httpSrv}
	if ms := observability.NewMetricsServer(cfg.MetricsAddr, reg); ms != nil {
		servers = append(servers, ms)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		s := s
		g.Go(func() error {
			log.Info().Str("addr", s.Addr).Msg("listening")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Str("addr", s.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("stopped")
}
