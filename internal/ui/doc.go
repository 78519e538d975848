// Package ui provides the render/dispatch loop and the panel renderer.
//
// # Overview
//
// The loop is the consuming half of the application's event pipeline. Each
// iteration draws one full frame, then blocks for exactly one event from
// the merged stream and dispatches it: 'q' terminates, every other key and
// every tick leads back to the next frame. Redraw is unconditional; there
// is no dirty tracking.
//
//	┌──────────────────────────────┐
//	│ Run loop (single-threaded)   │
//	│  1. clear + frame + show     │
//	│  2. receive one event        │
//	│  3. dispatch:                │
//	│     'q'  → return nil        │
//	│     key  → continue          │
//	│     tick → continue          │
//	└──────────────────────────────┘
//
// # Frame Renderer
//
// Drawing is delegated to a Frame callback invoked once per iteration with
// the screen and its current viewport size. The built-in implementation is
// Panel: a single rounded-corner box inset two cells from every viewport
// edge, a title on the top border, and a body line centered on the first
// interior row. Viewports too small for the border draw nothing.
//
// Panel carries a Selected field reserved for a future multi-item body; it
// is not read anywhere yet.
//
// # Themes
//
// Panel colors come from a built-in catalog declared as TOML and decoded
// at init. "default" reproduces the stock ANSI look (bright white frame,
// light cyan body); "nightfox" and "kanagawa" borrow the editor palettes
// of the same names. There is no way to load themes from outside the
// binary.
//
// # Separation of Concerns
//
// Run owns none of the terminal lifecycle: raw mode, cursor state, and
// screen finalization belong to the caller (see the app package). The loop
// only clears, draws, shows, and receives. Text measurement accounts for
// double-width runes and truncates at grapheme-cluster boundaries.
//
// # Errors
//
// Run returns nil on user quit and on context cancellation (an orderly
// stop in both cases). A merged stream that closes before either of those
// is ErrEventStreamClosed: the producer died underneath a live loop.
//
// # Key Bindings
//
//   - q: quit
//   - anything else: ignored
package ui
