package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/calamaunido/internal/buildinfo"
	"github.com/dmitrijs2005/calamaunido/internal/client/cli"
	"github.com/dmitrijs2005/calamaunido/internal/client/config"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	// Run closes the app on return.
	app.Run(ctx)
}
