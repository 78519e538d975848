// Package event merges terminal keyboard input and a fixed-rate tick into
// a single ordered event stream.
//
// # Overview
//
// The Poller is the producing half of the application's event pipeline. It
// owns the only reader of terminal input and pairs it with a steady
// heartbeat, so the consuming loop sees exactly one kind of thing: an
// ordered sequence of events, received one at a time.
//
//	┌────────────────────────────┐
//	│ Poller goroutine           │
//	│  ├─ terminal event pump    │──┐
//	│  └─ tick clock             │  │ merged, ordered
//	└────────────────────────────┘  │
//	                                ▼
//	                        Events() <-chan Event
//	                                │
//	                                ▼
//	                        render loop (consumer)
//
// # Event Model
//
// Event is a closed sum of two concrete types:
//
//   - Input: one keypress, described by a KeyPress value (key code, rune,
//     modifiers, arrival time). KeyPress shields consumers from the
//     terminal library's own event type.
//   - Tick: a zero-payload heartbeat meaning "at least one tick interval
//     has elapsed".
//
// Events are immutable and transient. They exist only in transit from the
// poller to the consumer; nothing stores or replays them.
//
// # Polling Algorithm
//
// Each pass of the poller:
//
//  1. Computes timeout = tickRate - elapsed since the last tick (floored
//     at zero).
//  2. Waits up to timeout for the terminal to report an event; a key that
//     arrives is forwarded immediately, without resetting the tick clock.
//  3. When the elapsed time reaches tickRate, forwards any keys the
//     terminal has already queued, then emits one Tick and resets the
//     clock to now.
//
// The tick is a fixed-rate heartbeat independent of input. Missed
// intervals are coalesced: after a stall, one Tick is emitted and the
// clock restarts, never a burst of catch-up ticks.
//
// # Ordering
//
// The merged channel is unbuffered, strict FIFO, single producer, single
// consumer. Keys are forwarded in the order the terminal reports them,
// and always ahead of a Tick whose deadline passed while they waited.
//
// # Lifecycle and Failure
//
// Start spawns the goroutine; a second Start is a no-op. The goroutine
// stops and closes the event stream when either
//
//   - the context is cancelled (the consumer's caller does this when the
//     loop returns), or
//   - the screen's own event pump shuts down (screen finalized, or the
//     input source failed).
//
// Every send is paired with the context, so a departed consumer cancels
// the poller rather than wedging it. The poller never terminates the
// process; a consumer that finds the stream closed decides what that
// means.
//
// # Usage
//
//	poller := event.NewPoller(screen, event.DefaultTickRate, logger)
//	poller.Start(ctx)
//	for ev := range poller.Events() {
//		switch ev := ev.(type) {
//		case event.Input:
//			handleKey(ev.KeyPress)
//		case event.Tick:
//			redraw()
//		}
//	}
package event
