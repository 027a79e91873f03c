// Command portfolio-cli queries the same GitHub portfolio data the API serves and prints it as JSON
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/platform/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	// stdout carries the JSON result
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	logger.Init(opt)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	root := newRootCommand(os.Stdout, newApp)
	if err := root.ExecuteContext(ctx); err != nil {
		code := exitCode(err)
		logger.Named("cli").Debug().Err(err).Int("exit_code", code).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(code)
	}
}
