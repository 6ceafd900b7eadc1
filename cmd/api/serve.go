package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mem "zoo-management/internal/adapters/storage/memory"
	pg "zoo-management/internal/adapters/storage/postgres"
	"zoo-management/internal/adapters/storage/sqlite"
	"zoo-management/internal/config"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/platform/logger"
	"zoo-management/internal/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to the store and serve the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin store no hay servicio: cualquier falla aquí termina el proceso.
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store connection failed", "driver", cfg.DBDriver, "err", err)
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("store close failed", "err", err)
		}
	}()
	log.Info("store connected", "driver", cfg.DBDriver)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:          store,
			Logger:         log,
			StrictNotFound: cfg.StrictNotFound,
			Version:        version,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "docs", router.DocsPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore abre el store configurado y aplica el schema. Sin reintentos.
func openStore(ctx context.Context, cfg config.Config) (animals.Repository, func() error, error) {
	var (
		db      *sql.DB
		err     error
		migrate func(context.Context, *sql.DB) error
		newRepo func(*sql.DB) animals.Repository
	)

	switch cfg.DBDriver {
	case config.DriverMemory:
		return mem.NewAnimalRepo(), func() error { return nil }, nil
	case config.DriverPostgres:
		db, err = pg.Open(ctx, cfg.DBDSN)
		migrate = pg.Migrate
		newRepo = func(db *sql.DB) animals.Repository { return pg.NewAnimalsRepo(db) }
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.DBDSN)
		migrate = sqlite.Migrate
		newRepo = func(db *sql.DB) animals.Repository { return sqlite.NewAnimalsRepo(db) }
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return newRepo(db), db.Close, nil
}
