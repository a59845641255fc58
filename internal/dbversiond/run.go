package dbversiond

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbversion/dbversion/internal/dbversiond/config"
	"github.com/dbversion/dbversion/internal/dbversiond/server"
	"github.com/dbversion/dbversion/internal/log"
	"github.com/dbversion/dbversion/internal/reporter"
)

// Run runs the dbversiond server.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewLogger(os.Stdout, conf.Debug)
	logger.Info("starting dbversiond")
	logger.InfoNs(log.NsConfig, "configuration loaded", log.KV{
		"database_url": config.RedactDatabaseURL(conf.DatabaseURL),
		"listen_addr":  conf.ListenAddr,
		"listen_port":  conf.ListenPort,
		"debug":        conf.Debug,
	})

	rp := reporter.NewReporter(reporter.Config{
		DatabaseURL: conf.DatabaseURL,
	})

	serv, err := server.NewServer(server.Config{
		Logger:     logger,
		Reporter:   rp,
		ListenHost: conf.ListenAddr,
		ListenPort: conf.ListenPort,
		Debug:      conf.Debug,
	})
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}
	defer func() {
		if err := serv.Stop(); err != nil {
			logger.Error("error stopping server", log.KV{"error": err})
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- serv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("goodbye! stopping dbversiond")
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	}
}
