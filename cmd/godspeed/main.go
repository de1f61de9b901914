// Package main is the entry point for the godspeed CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"godspeed/internal/cli"
	"godspeed/internal/config"
	"godspeed/internal/notify"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg := config.FromEnv()

	code := cli.Run(ctx, cfg, nil, notify.Desktop{}, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
