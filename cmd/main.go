package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chill_timer/internal/catalog"
	"chill_timer/internal/config"
	"chill_timer/internal/handlers"
	"chill_timer/internal/logger"
	"chill_timer/internal/repository"
	"chill_timer/internal/repository/db"
	"chill_timer/internal/server"
	"chill_timer/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Chill Timer API
// @version                     1.0
// @description                 Cooling timers for drinks: catalog presets, cooling estimates and live timers.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml, .env and CHILL_* overrides
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()
	if cfg.Auth.SigningKey == config.DefaultSigningKey {
		log.Warnw("auth.signing_key is the development default; set CHILL_AUTH_SIGNING_KEY")
	}

	// open DB
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalw("failed to build catalog", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, cat, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Logger:     log,
	})
	apiHandler := handlers.NewHandler(services, log.Component("http"), handlers.WithStreamInterval(cfg.WS.Interval))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// announce finished timers
	go services.Watcher.Run(ctx, cfg.Watcher.Tick)

	// start HTTP server
	srv := server.New(server.Options{})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("listening", "port", cfg.Port, "db", cfg.DB.Path)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
