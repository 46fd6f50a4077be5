package main

import (
	"context"
	"flag"
	"os"

	"StockKeeper/internal/cli/commands"
	"StockKeeper/internal/config"
)

func main() {
	cfg := config.NewConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Exit(commands.Dispatch(ctx, cfg, flag.Args()))
}
