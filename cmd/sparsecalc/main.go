// Package main provides the sparsecalc command line tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sparsecalc/internal/platform/config"
	"github.com/katalvlaran/sparsecalc/internal/platform/otel"
	"github.com/katalvlaran/sparsecalc/internal/tools/sparsecalc"
)

func main() {
	cfg, err := sparsecalc.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	shutdown, err := otel.Setup(ctx, "sparsecalc")
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	runErr := sparsecalc.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	if err := shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "otel shutdown: %v\n", err)
	}
	if runErr != nil {
		config.Exitf("Error: %v", runErr)
	}
}
