/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Mensualwork timesheet server: configuration,
  the SQLite bucket store, the fiscal aggregator, the HTTP router, and
  graceful shutdown.

CONFIGURATION:
  Environment (or .env): PORT, DB_PATH, LOG_LEVEL.
  Flags override the environment:
    -port  HTTP server port
    -db    SQLite database path (":memory:" for in-memory)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite: Bucket persistence
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexvasa10/Mensualwork/api"
	"github.com/alexvasa10/Mensualwork/config"
	"github.com/alexvasa10/Mensualwork/store/sqlite"
	"github.com/alexvasa10/Mensualwork/timesheet"
)

func main() {
	cfg := config.Load()

	port := flag.String("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)

	store, err := sqlite.New(*dbPath, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer store.Close()

	agg := timesheet.NewAggregator(store, log)
	handler := api.NewHandler(agg, log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
