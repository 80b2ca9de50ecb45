// Package server initializes and runs the application: it selects the storage
// backend, wires services and the HTTP server, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkarpenko/taskdesk/internal/logging"
	"github.com/mkarpenko/taskdesk/internal/server/config"
	"github.com/mkarpenko/taskdesk/internal/server/httpapi"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/repomanager"
	"github.com/mkarpenko/taskdesk/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	http    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := newRepositoryManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(m, cfg)
	ts := services.NewTaskService(m)

	return &App{
		config:  cfg,
		logger:  logger,
		manager: m,
		http:    httpapi.NewServer(cfg, logger, us, ts),
	}, nil
}

// newRepositoryManager picks the backend: postgres when a DSN is configured,
// whole-file JSON collections otherwise.
func newRepositoryManager(cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN != "" {
		return repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	}
	return repomanager.NewFileRepositoryManager(cfg.DataDir)
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
	if err := app.http.Run(ctx); err != nil {
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

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err.Error())
	}
}
