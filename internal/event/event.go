package event

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Event is one item on the merged input/tick stream. Exactly two kinds
// exist: Input wraps a captured keypress and Tick marks the passage of one
// tick interval. Events are built by the Poller, consumed once by the
// render loop, and then discarded; nothing stores or replays them.
type Event interface {
	isEvent()
}

// KeyPress describes a single captured key event without exposing the
// terminal library's own event type to consumers.
type KeyPress struct {
	Key  tcell.Key // named key, or KeyRune for printable input
	Rune rune      // set when Key is KeyRune
	Mods tcell.ModMask
	When time.Time
}

// Input carries one keypress from the terminal.
type Input struct {
	KeyPress
}

// Tick signals that at least one tick interval has elapsed since the
// previous Tick, or since the poller started. It carries no payload.
type Tick struct{}

func (Input) isEvent() {}
func (Tick) isEvent()  {}

func newKeyPress(ev *tcell.EventKey) KeyPress {
	return KeyPress{
		Key:  ev.Key(),
		Rune: ev.Rune(),
		Mods: ev.Modifiers(),
		When: ev.When(),
	}
}
