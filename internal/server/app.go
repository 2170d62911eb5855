// Package server initializes and runs the REST backend. It opens the
// database, applies migrations, and serves the console API until a stop
// signal arrives.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dvillarroel/actifijo/internal/logging"
	"github.com/dvillarroel/actifijo/internal/server/config"
	"github.com/dvillarroel/actifijo/internal/server/httpapi"
	"github.com/dvillarroel/actifijo/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {

	st, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{config: cfg, logger: logger, store: st}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	api := httpapi.NewServer(app.config, app.store, app.logger)

	srv := &http.Server{
		Addr:    app.config.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting http server", "addr", app.config.HTTPAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
