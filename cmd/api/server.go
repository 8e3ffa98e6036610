package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/angelmondragon/inventory-service/pkg/config"
)

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}
}

// serve runs server until ctx is cancelled, then shuts it down within timeout
// and closes the given resources. All failures are returned together.
func serve(ctx context.Context, server *http.Server, timeout time.Duration, closers ...io.Closer) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err = multierr.Append(err, server.Shutdown(shutdownCtx))
		err = multierr.Append(err, <-errCh)
	}

	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}
