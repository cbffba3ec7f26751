package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/agroassist/internal/buildinfo"
	"github.com/dmitrijs2005/agroassist/internal/client/cli"
	"github.com/dmitrijs2005/agroassist/internal/client/config"
	"github.com/dmitrijs2005/agroassist/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
