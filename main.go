package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/msgfmt/cli"
	"github.com/ardnew/msgfmt/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)
	stop()

	if err != nil {
		if !cli.Reported(err) {
			log.Error("run failed", slog.Any("error", err))
		}

		os.Exit(1)
	}
}
