package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	keystone "github.com/aethongr/keystone-api-standard"
	"github.com/aethongr/keystone-api-standard/config"
	"github.com/aethongr/keystone-api-standard/internal"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the yaml configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot := internal.NewLogger("info", "console")
		boot.Fatal().Err(err).Msg("loading configuration")
	}
	log := internal.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	srv, err := keystone.NewServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("starting server")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
