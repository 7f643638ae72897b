package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lidocrawler/internal/buildinfo"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/cli"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if errors.Is(err, config.ErrNoSession) {
			config.Usage(os.Stderr)
		}
		os.Exit(1)
	}

	if cfg.ShowVersion {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
