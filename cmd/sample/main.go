// Command sample serves a small route catalogue built on scarp types. Request
// values are bound with package binding and rows are stored in SQLite through
// the scarp column converters.
//
// Run:
//
//	go run ./cmd/sample -addr :8080 -db routes.db
//
// Then explore:
//
//	GET    http://localhost:8080/v1/health
//	GET    http://localhost:8080/v1/routes?min_distance=2.5&limit=10
//	POST   http://localhost:8080/v1/routes
//	GET    http://localhost:8080/v1/routes/{id}
//	DELETE http://localhost:8080/v1/routes/{id}
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", ":memory:", "SQLite database path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := serve(ctx, logger, *addr, *dbPath); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func serve(ctx context.Context, logger *slog.Logger, addr, dbPath string) error {
	store, err := openStore(ctx, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr, "db", dbPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
