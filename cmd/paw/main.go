package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/teranos/paw/cmd/paw/commands"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		if !errors.Is(err, commands.ErrReported) {
			commands.PrintError(err)
		}
		os.Exit(1)
	}
}
