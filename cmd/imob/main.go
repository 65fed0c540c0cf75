package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/imob/internal/buildinfo"
	"github.com/dmitrijs2005/imob/internal/cli"
	"github.com/dmitrijs2005/imob/internal/config"
	"github.com/dmitrijs2005/imob/internal/describe"
	"github.com/dmitrijs2005/imob/internal/logging"
	"github.com/dmitrijs2005/imob/internal/storage"
	"github.com/dmitrijs2005/imob/internal/store"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	interactive := cli.StdinIsTerminal()
	if interactive {
		buildinfo.PrintBuildData(os.Stdout)
	}

	repo, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closer.Close()

	var gen describe.Generator = describe.Disabled{}
	if cfg.GenAIAPIKey != "" {
		g, err := describe.NewGeminiGenerator(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			logger.Warn(ctx, "description generation disabled", "error", err)
		} else {
			gen = g
		}
	}

	app := cli.NewApp(
		store.New(repo, store.WithLogger(logger.With("component", "store"))),
		describe.New(gen, cfg.DescribeTimeout, logger.With("component", "describe")),
		logger,
		os.Stdin,
		os.Stdout,
	)
	app.SetInteractive(interactive)

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "imob stopped", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
