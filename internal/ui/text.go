package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// displayWidth returns the number of terminal cells s occupies, counting
// double-width runes as two.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncateToWidth cuts s at a grapheme-cluster boundary so that it fits in
// limit cells. Combining marks stay attached to their base rune.
func truncateToWidth(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if displayWidth(s) <= limit {
		return s
	}
	out := make([]byte, 0, len(s))
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > limit {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out)
}

// drawText writes text onto the screen starting at (x, y), one grapheme
// cluster per cell group, and returns the column after the last cell
// written. The caller is responsible for truncating to the viewport.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		var combining []rune
		if len(runes) > 1 {
			combining = runes[1:]
		}
		s.SetContent(x, y, runes[0], combining, style)
		x += runewidth.StringWidth(g.Str())
	}
	return x
}
