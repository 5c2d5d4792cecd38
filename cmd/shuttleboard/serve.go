package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nickgulson11/nickPersonalSite/internal/app"
	"github.com/nickgulson11/nickPersonalSite/internal/logging"
	"github.com/nickgulson11/nickPersonalSite/internal/restapi"
)

// runServer serves the JSON API until the context is canceled, then drains
// in-flight requests. The write timeout leaves room for both upstream
// fetches on a slow day.
func runServer(ctx context.Context, application *app.Application) error {
	api := restapi.NewRestAPI(application)
	defer api.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Server.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	logging.LogOperation(application.Logger, "server_started", slog.String("addr", srv.Addr))

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logging.LogOperation(application.Logger, "server_stopped")
	return nil
}
