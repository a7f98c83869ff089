package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jmorales/ciclofit/internal/docstore"
	"github.com/jmorales/ciclofit/internal/envstruct"
	"github.com/jmorales/ciclofit/internal/errors"
	"github.com/jmorales/ciclofit/internal/gym"
	"github.com/jmorales/ciclofit/internal/logging"
)

type application struct {
	logger     *slog.Logger
	gymService *gym.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"CICLOFIT_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"CICLOFIT_SQLITE_URL" envDefault:"./ciclofit.sqlite3"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	store, err := docstore.NewSQLite(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open document store", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "closing document store", slog.Any("error", closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to document store")

	app := application{
		logger:     logger,
		gymService: gym.NewService(store, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
