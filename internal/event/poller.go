package event

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultTickRate is the heartbeat interval used when the caller does not
// pick one.
const DefaultTickRate = 200 * time.Millisecond

// rawBuffer sizes the channel fed by the screen's event pump. Keys that
// arrive while the consumer digests an earlier event queue here in
// terminal order instead of stalling the pump.
const rawBuffer = 16

// Poller merges keyboard input and a fixed-rate tick into a single ordered
// stream. It is the sole reader of terminal input; run exactly one poller
// per screen.
type Poller struct {
	screen   tcell.Screen
	tickRate time.Duration
	logger   *slog.Logger

	out     chan Event
	started atomic.Bool
}

// NewPoller returns a poller for screen. A non-positive tickRate falls back
// to DefaultTickRate; a nil logger discards.
func NewPoller(screen tcell.Screen, tickRate time.Duration, logger *slog.Logger) *Poller {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Poller{
		screen:   screen,
		tickRate: tickRate,
		logger:   logger,
		out:      make(chan Event),
	}
}

// Events returns the merged stream. The channel is unbuffered and closes
// once the poller stops.
func (p *Poller) Events() <-chan Event {
	return p.out
}

// Start launches the polling goroutine and returns immediately; further
// calls are no-ops. The goroutine stops, closing the event stream, when
// ctx is cancelled or the screen's event pump shuts down.
func (p *Poller) Start(ctx context.Context) {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.out)

	raw := make(chan tcell.Event, rawBuffer)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(raw, quit)

	p.logger.Debug("event poller started", "tick_rate", p.tickRate)
	defer p.logger.Debug("event poller stopped")

	lastTick := time.Now()
	for {
		if !p.await(ctx, raw, p.tickRate-time.Since(lastTick)) {
			return
		}
		if time.Since(lastTick) < p.tickRate {
			continue
		}
		// Keys the terminal has already reported go out ahead of the
		// tick whose interval they arrived in.
		if !p.drain(ctx, raw) {
			return
		}
		select {
		case p.out <- Tick{}:
			lastTick = time.Now()
		case <-ctx.Done():
			return
		}
	}
}

// await waits up to timeout for the terminal to report an event and
// forwards at most one key. A zero or negative timeout returns at once;
// the tick is already due. It reports false when the poller must stop.
func (p *Poller) await(ctx context.Context, raw <-chan tcell.Event, timeout time.Duration) bool {
	if timeout <= 0 {
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-raw:
		if !ok {
			return false
		}
		return p.forward(ctx, ev)
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// drain forwards every key already queued without blocking on the
// terminal. It reports false when the poller must stop.
func (p *Poller) drain(ctx context.Context, raw <-chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-raw:
			if !ok {
				return false
			}
			if !p.forward(ctx, ev) {
				return false
			}
		default:
			return true
		}
	}
}

// forward emits key events on the merged stream and drops every other
// terminal event; a resize simply lands in the next tick's redraw. It
// reports false when ctx ended during the send.
func (p *Poller) forward(ctx context.Context, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	select {
	case p.out <- Input{KeyPress: newKeyPress(key)}:
		return true
	case <-ctx.Done():
		return false
	}
}
