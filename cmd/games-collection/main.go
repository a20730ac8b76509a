package main

import (
	"fmt"
	"os"

	"games-collection/internal/app"
	"games-collection/internal/config"
	"games-collection/internal/logger"
	"games-collection/internal/shutdown"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level: cfg.LogLevel,
		JSON:  cfg.JSONLogs,
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("lifecycle", application.Lifecycle())
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	shutdownManager.Shutdown()
	log.Info("Main", "application terminated", nil)
}
