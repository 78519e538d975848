// Package app wires the event poller and the render loop into a running
// terminal session.
//
// # Overview
//
// This is the composition root. Run owns everything with a lifecycle: the
// screen (raw mode in, restore out), the cancellation context, and the
// poller goroutine. The pieces themselves live in their own packages and
// know nothing about each other's setup.
//
// # Lifecycle
//
//	Run(ctx, opts)
//	  ├─ resolve theme            fails before any terminal state changes
//	  ├─ screen.Init()            raw mode + alternate screen
//	  ├─ defer screen.Fini()      restore on every exit path
//	  ├─ derive ctx, defer cancel
//	  ├─ poller.Start(ctx)        background goroutine
//	  └─ ui.Run(...)              blocks until quit/cancel/failure
//
// The deferred Fini is the whole raw-mode story: whichever way ui.Run
// returns, the terminal comes back cooked with the cursor restored. The
// deferred cancel is the whole poller story: once the loop is done, the
// poller's next send or wait observes the cancelled context and the
// goroutine exits, closing its stream.
//
// # Options
//
// All fields are optional:
//
//   - TickRate: heartbeat interval, default 200ms
//   - Theme: catalog name, default "default"
//   - Logger: slog destination, default discard
//   - Screen: an injected screen (tests use tcell's simulation screen);
//     nil opens the process terminal
//
// An injected screen is still initialized and finalized by Run; lifecycle
// stays here regardless of who made the screen.
//
// # Error Handling
//
// Fatal startup errors (unknown theme, terminal open/init failure) return
// before or after the screen exists, always with raw mode released. The
// one fatal runtime error is the event stream closing underneath the loop,
// which surfaces as ui.ErrEventStreamClosed. User quit and context
// cancellation return nil.
package app
