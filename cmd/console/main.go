package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dvillarroel/actifijo/internal/buildinfo"
	"github.com/dvillarroel/actifijo/internal/client/config"
	"github.com/dvillarroel/actifijo/internal/client/console"
	"github.com/dvillarroel/actifijo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := console.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
