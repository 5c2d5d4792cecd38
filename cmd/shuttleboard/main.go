package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickgulson11/nickPersonalSite/internal/app"
	"github.com/nickgulson11/nickPersonalSite/internal/board"
	"github.com/nickgulson11/nickPersonalSite/internal/config"
	"github.com/nickgulson11/nickPersonalSite/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file")
		pagePath   = flag.String("page", "", "Page file to update (overrides config)")
		every      = flag.Duration("every", 0, "Keep refreshing the page at this interval")
		serve      = flag.Bool("serve", false, "Serve the JSON API instead of updating the page")
		port       = flag.Int("port", 0, "API server port (overrides config)")
		stops      = flag.Bool("stops", false, "List the stops on the given route instead of bus times")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	// Logs go to stderr so the bus times on stdout stay clean.
	logger := logging.NewStructuredLogger(os.Stderr, level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(logger, err)
	}
	if *pagePath != "" {
		cfg.Page.Path = *pagePath
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		fatal(logger, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *serve:
		err = runServer(ctx, application)
	case *stops:
		if flag.NArg() == 0 {
			fatal(logger, errors.New("-stops requires a route argument (outbound or inbound)"))
		}
		err = printStops(ctx, os.Stdout, application, flag.Arg(0))
	case flag.NArg() > 0:
		err = printRouteTimes(ctx, os.Stdout, application, flag.Arg(0))
	case *every > 0:
		board.New(application).RunEvery(ctx, *every)
	default:
		err = board.New(application).Refresh(ctx)
	}

	if err != nil {
		fatal(logger, err)
	}
}

func fatal(logger *slog.Logger, err error) {
	logger.Error(err.Error())
	os.Exit(1)
}
