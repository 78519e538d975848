package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sfui/sfui/internal/event"
	"github.com/sfui/sfui/internal/ui"
)

// Options configure the application.
type Options struct {
	TickRate time.Duration // zero uses event.DefaultTickRate
	Theme    string        // empty uses the default palette
	Logger   *slog.Logger  // nil discards
	Screen   tcell.Screen  // nil opens the process terminal
}

func (o *Options) normalize() {
	if o.TickRate <= 0 {
		o.TickRate = event.DefaultTickRate
	}
	if o.Theme == "" {
		o.Theme = ui.DefaultThemeName
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Run boots the shell and blocks until the user quits, the context is
// cancelled, or the session fails. Raw mode is acquired here and released
// on every return path, error paths included.
func Run(ctx context.Context, opts Options) error {
	opts.normalize()

	theme, err := ui.LookupTheme(opts.Theme)
	if err != nil {
		return fmt.Errorf("resolve theme: %w", err)
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()

	// Cancelling here reclaims the poller once the loop returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := event.NewPoller(screen, opts.TickRate, opts.Logger)
	poller.Start(ctx)

	return ui.Run(ctx, ui.Options{
		Screen: screen,
		Events: poller.Events(),
		Frame:  ui.NewPanel(theme).Frame(),
		Logger: opts.Logger,
	})
}
