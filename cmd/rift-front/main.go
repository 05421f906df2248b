package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riftrewind/rift-front/internal/config"
	"github.com/riftrewind/rift-front/internal/log"
	"github.com/riftrewind/rift-front/internal/riot"
	"github.com/riftrewind/rift-front/internal/server"
)

var BuildVersion = "dev"

func main() {
	version := flag.Bool("version", false, "print version and exit")
	help := flag.Bool("help", false, "print help and exit")
	flag.Parse()
	if *help {
		flag.Usage()
		return
	}
	if *version {
		fmt.Println(BuildVersion)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.LogError("Failed to load config: %v", err)
		os.Exit(1)
	}

	log.LogInfoWithFields("main", "Starting rift-front", map[string]any{
		"version":   BuildVersion,
		"addr":      cfg.Addr,
		"env":       cfg.Environment,
		"mockLogin": !cfg.HasRSOCredentials(),
	})

	provider := riot.NewProvider(cfg.RSOClientID, string(cfg.RSOClientSecret), cfg.RedirectURI())
	client := riot.NewClient(string(cfg.RiotAPIKey))

	srv := server.NewHTTPServer(server.NewRouter(cfg, provider, client), cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.LogError("Server error: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.LogError("Failed to stop server cleanly: %v", err)
			os.Exit(1)
		}
	}
}
