package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/SscSPs/currency_exchanger/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute(ctx)
}
