package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func drawPanel(t *testing.T, p *Panel, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(width, height)
	p.Frame()(s, width, height)
	s.Show()
	return s
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	t.Helper()
	cells, w, h := s.GetContents()
	if x < 0 || x >= w || y < 0 || y >= h {
		t.Fatalf("cell (%d,%d) outside %dx%d", x, y, w, h)
	}
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func TestPanel_BorderGeometry(t *testing.T) {
	s := drawPanel(t, NewPanel(DefaultTheme()), 80, 24)

	// Margin 2 on an 80x24 viewport puts the frame at (2,2)-(77,21).
	corners := []struct {
		x, y int
		want rune
	}{
		{2, 2, borderTopLeft},
		{77, 2, borderTopRight},
		{2, 21, borderBottomLeft},
		{77, 21, borderBottomRight},
	}
	for _, c := range corners {
		if got, _ := cellAt(t, s, c.x, c.y); got != c.want {
			t.Fatalf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	if got, _ := cellAt(t, s, 40, 2); got != borderHorizontal {
		t.Fatalf("top edge = %q, want %q", got, borderHorizontal)
	}
	if got, _ := cellAt(t, s, 40, 21); got != borderHorizontal {
		t.Fatalf("bottom edge = %q, want %q", got, borderHorizontal)
	}
	if got, _ := cellAt(t, s, 2, 12); got != borderVertical {
		t.Fatalf("left edge = %q, want %q", got, borderVertical)
	}
	if got, _ := cellAt(t, s, 77, 12); got != borderVertical {
		t.Fatalf("right edge = %q, want %q", got, borderVertical)
	}

	// The margin stays empty.
	for _, pos := range [][2]int{{0, 0}, {1, 1}, {78, 22}, {79, 23}} {
		if got, _ := cellAt(t, s, pos[0], pos[1]); got != ' ' {
			t.Fatalf("margin cell (%d,%d) = %q, want blank", pos[0], pos[1], got)
		}
	}
}

func TestPanel_TitleOnTopBorder(t *testing.T) {
	s := drawPanel(t, NewPanel(DefaultTheme()), 80, 24)

	for i, want := range "SFUI" {
		if got, _ := cellAt(t, s, 3+i, 2); got != want {
			t.Fatalf("title cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestPanel_BodyCentered(t *testing.T) {
	s := drawPanel(t, NewPanel(DefaultTheme()), 80, 24)

	// Interior spans columns 3-76 (74 cells); "Hello World!" is 12 wide,
	// so the centered run starts at column 34 on the first interior row.
	for i, want := range "Hello World!" {
		if got, _ := cellAt(t, s, 34+i, 3); got != want {
			t.Fatalf("body cell %d = %q, want %q", i, got, want)
		}
	}
	if got, _ := cellAt(t, s, 33, 3); got != ' ' {
		t.Fatalf("cell left of body = %q, want blank", got)
	}
	if got, _ := cellAt(t, s, 46, 3); got != ' ' {
		t.Fatalf("cell right of body = %q, want blank", got)
	}
}

func TestPanel_ThemeColors(t *testing.T) {
	theme := DefaultTheme()
	s := drawPanel(t, NewPanel(theme), 80, 24)

	wantBorder := tcell.StyleDefault.Foreground(tcell.GetColor(theme.Border))
	wantBody := tcell.StyleDefault.Foreground(tcell.GetColor(theme.Body))

	if _, style := cellAt(t, s, 2, 2); style != wantBorder {
		t.Fatalf("border style = %v, want %v", style, wantBorder)
	}
	if _, style := cellAt(t, s, 34, 3); style != wantBody {
		t.Fatalf("body style = %v, want %v", style, wantBody)
	}
}

func TestPanel_NarrowViewportTruncates(t *testing.T) {
	s := drawPanel(t, NewPanel(DefaultTheme()), 10, 8)

	// Frame at (2,2)-(7,5), interior 4 wide: the body truncates to
	// "Hell" flush against the left interior edge.
	for i, want := range "Hell" {
		if got, _ := cellAt(t, s, 3+i, 3); got != want {
			t.Fatalf("body cell %d = %q, want %q", i, got, want)
		}
	}
	if got, _ := cellAt(t, s, 7, 2); got != borderTopRight {
		t.Fatalf("corner = %q, want %q", got, borderTopRight)
	}
}

func TestPanel_TinyViewportDrawsNothing(t *testing.T) {
	s := drawPanel(t, NewPanel(DefaultTheme()), 5, 5)

	cells, w, h := s.GetContents()
	for i, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			t.Fatalf("cell (%d,%d) = %q, want blank screen on a %dx%d viewport",
				i%w, i/w, c.Runes[0], w, h)
		}
	}
}

func TestPanel_WideRuneBody(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Body = "日本"
	s := drawPanel(t, p, 80, 24)

	// Width 4, centered over 74 interior cells: columns 38-41.
	if got, _ := cellAt(t, s, 38, 3); got != '日' {
		t.Fatalf("first wide rune = %q, want %q", got, '日')
	}
	if got, _ := cellAt(t, s, 40, 3); got != '本' {
		t.Fatalf("second wide rune = %q, want %q", got, '本')
	}
}
