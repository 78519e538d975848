package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/sfui/sfui/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// There is no CLI surface: no flags, no environment, no files. The
	// only requirement is an interactive terminal on stdin.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "sfui: stdin is not a terminal")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Warnings surface on stderr after the screen is restored.
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: "15:04:05.000",
	}))

	if err := app.Run(ctx, app.Options{Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "sfui: %v\n", err)
		return 1
	}
	return 0
}
