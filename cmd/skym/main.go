// Package main is the entry point for the skym CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivergara/skym/internal/adapters/driven/config/env"
	"github.com/ivergara/skym/internal/adapters/driving/cli"
	"github.com/ivergara/skym/internal/logger"
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	cfg, err := env.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.SetVerbose(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetDependencies(newWiring(cfg))

	if err := cli.Execute(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
