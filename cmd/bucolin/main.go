// Package main provides the CLI for the BUCOLIN translator website.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zym-starx/bucolin-translator-website/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
