package ui

import (
	"github.com/gdamore/tcell/v2"
)

const (
	defaultTitle = "SFUI"
	defaultBody  = "Hello World!"

	// panelMargin is the gap between the viewport edge and the border.
	panelMargin = 2
)

// Border runes, rounded corners.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '╭'
	borderTopRight    = '╮'
	borderBottomLeft  = '╰'
	borderBottomRight = '╯'
)

// Panel is the built-in frame renderer: a single bordered box with a title
// on the top edge and a centered body line.
type Panel struct {
	Title string
	Body  string
	Theme Theme

	// Selected is a selection cursor for a future multi-item body.
	// Nothing reads it yet.
	Selected int
}

// NewPanel returns a panel with the stock title and body in the given
// theme.
func NewPanel(theme Theme) *Panel {
	return &Panel{
		Title: defaultTitle,
		Body:  defaultBody,
		Theme: theme,
	}
}

// Frame adapts the panel to the loop's frame-renderer contract.
func (p *Panel) Frame() Frame {
	return func(s tcell.Screen, width, height int) {
		p.draw(s, width, height)
	}
}

// draw renders the panel inside the viewport, margin included. Viewports
// too small to hold the border are left blank.
func (p *Panel) draw(s tcell.Screen, width, height int) {
	x0 := panelMargin
	y0 := panelMargin
	x1 := width - 1 - panelMargin
	y1 := height - 1 - panelMargin
	if x1-x0 < 1 || y1-y0 < 1 {
		return
	}

	styles := p.Theme.Styles()

	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, borderHorizontal, nil, styles.Border)
		s.SetContent(x, y1, borderHorizontal, nil, styles.Border)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, borderVertical, nil, styles.Border)
		s.SetContent(x1, y, borderVertical, nil, styles.Border)
	}
	s.SetContent(x0, y0, borderTopLeft, nil, styles.Border)
	s.SetContent(x1, y0, borderTopRight, nil, styles.Border)
	s.SetContent(x0, y1, borderBottomLeft, nil, styles.Border)
	s.SetContent(x1, y1, borderBottomRight, nil, styles.Border)

	inner := x1 - x0 - 1
	if inner <= 0 {
		return
	}

	if title := truncateToWidth(p.Title, inner); title != "" {
		drawText(s, x0+1, y0, title, styles.Title)
	}

	// Body sits on the first interior row, centered horizontally.
	if y1-y0 < 2 {
		return
	}
	body := truncateToWidth(p.Body, inner)
	if body == "" {
		return
	}
	drawText(s, x0+1+(inner-displayWidth(body))/2, y0+1, body, styles.Body)
}
