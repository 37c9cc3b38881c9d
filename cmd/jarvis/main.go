package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"jarvis-assistant/cmd/jarvis/commands"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
