package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/sfui/sfui/internal/event"
)

// ErrEventStreamClosed reports that the merged event stream ended before
// the user asked to quit or the context was cancelled.
var ErrEventStreamClosed = errors.New("event stream closed")

// Frame renders one frame onto the screen for the given viewport size.
// Implementations hold no state across calls; the loop invokes the frame
// exactly once per iteration.
type Frame func(s tcell.Screen, width, height int)

// Options configure the render loop.
type Options struct {
	Screen tcell.Screen
	Events <-chan event.Event
	Frame  Frame // nil draws the default panel
	Logger *slog.Logger
}

// Run drives the render/dispatch loop: draw one frame, receive one event,
// decide. 'q' returns nil; every other key and every tick redraws and
// carries on. A cancelled context is an orderly stop, also nil. The caller
// owns screen lifecycle; Run never touches raw mode or cursor state.
func Run(ctx context.Context, opts Options) error {
	if opts.Screen == nil {
		return fmt.Errorf("run loop: nil screen")
	}
	if opts.Events == nil {
		return fmt.Errorf("run loop: nil event stream")
	}
	frame := opts.Frame
	if frame == nil {
		frame = NewPanel(DefaultTheme()).Frame()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for {
		opts.Screen.Clear()
		width, height := opts.Screen.Size()
		frame(opts.Screen, width, height)
		opts.Screen.Show()

		// The loop's only suspension point.
		select {
		case ev, ok := <-opts.Events:
			if !ok {
				// Cancellation closes the stream too; that exit is
				// the orderly stop, not a producer failure.
				if err := ctx.Err(); err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
				return ErrEventStreamClosed
			}
			switch ev := ev.(type) {
			case event.Input:
				if isQuit(ev.KeyPress) {
					logger.Debug("quit requested")
					return nil
				}
				// Any other key redraws and continues.
			case event.Tick:
				// Heartbeat; the next pass redraws.
			}
		case <-ctx.Done():
			if err := ctx.Err(); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
	}
}

// isQuit reports whether the keypress is the quit binding, the character
// 'q' with any modifier.
func isQuit(k event.KeyPress) bool {
	return k.Key == tcell.KeyRune && k.Rune == 'q'
}
