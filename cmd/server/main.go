package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dvillarroel/actifijo/internal/buildinfo"
	"github.com/dvillarroel/actifijo/internal/logging"
	"github.com/dvillarroel/actifijo/internal/server"
	"github.com/dvillarroel/actifijo/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
