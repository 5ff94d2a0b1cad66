// ABOUTME: Entry point for the DocTalk terminal client
// ABOUTME: Loads configuration and dispatches one command per invocation

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/doctalk/doctalk-cli/commands"
	"github.com/doctalk/doctalk-cli/config"
	"github.com/doctalk/doctalk-cli/logger"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Debug("Backend configured", "url", cfg.APIBaseURL, "demo_fallback", cfg.DemoFallback)

	runner := commands.NewRunner(cfg, os.Stdin, os.Stdout)
	os.Exit(runner.Run(context.Background(), os.Args[1:]))
}
