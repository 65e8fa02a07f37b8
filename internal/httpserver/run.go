package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Run maps all handlers and serves until the context is cancelled,
// then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	srv.mapHandlers()

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
