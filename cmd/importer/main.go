package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shlomaa/distributors-import/cmd/importer/config"
	"github.com/shlomaa/distributors-import/internal/deactivation"
	"github.com/shlomaa/distributors-import/internal/decoder"
	"github.com/shlomaa/distributors-import/internal/fetcher"
	"github.com/shlomaa/distributors-import/internal/handler"
	"github.com/shlomaa/distributors-import/internal/importer"
	"github.com/shlomaa/distributors-import/internal/normalizer"
	"github.com/shlomaa/distributors-import/internal/platform/rabbitmq"
	"github.com/shlomaa/distributors-import/internal/platform/storage"
	"github.com/shlomaa/distributors-import/internal/reconciler"
	"github.com/shlomaa/distributors-import/internal/stocksync"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching feed file.
	UserAgent = "distributors-import/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB)

	rec := reconciler.NewReconciler(pg, pg, stocksync.NewSynchronizer(pg))

	imp := importer.NewImporter(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		&decoder.Decoder{},
		normalizer.NewNormalizer(pg),
		rec,
		pg,
		pg,
		importer.WithWorkers(cfg.RegionWorkers),
		importer.WithLogger(logger),
	)

	deact := deactivation.NewEngine(pg, pg, pg, deactivation.SystemClock{})

	han := handler.NewHandler(conn, imp, deact, pg, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("distributors import up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
