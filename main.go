package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"smarttasks/config"
	"smarttasks/connection"
	"smarttasks/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logData, err := logger.New().
		FromPath(cfg.Log.File).
		WithLevel(cfg.Log.Level).
		WithFormat(cfg.Log.Format).
		Make()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logData.Close()

	if err := connection.StartServer(context.Background(), cfg, logData.Logger); err != nil {
		logData.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
