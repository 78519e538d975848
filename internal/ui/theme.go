package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// Theme names one border/text color combination for the panel. Colors are
// hex strings resolved through tcell's color table at draw time.
type Theme struct {
	Name   string `toml:"name"`
	Border string `toml:"border"`
	Title  string `toml:"title"`
	Body   string `toml:"body"`
}

// Styles returns the resolved tcell styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Border: tcell.StyleDefault.Foreground(tcell.GetColor(t.Border)),
		Title:  tcell.StyleDefault.Foreground(tcell.GetColor(t.Title)),
		Body:   tcell.StyleDefault.Foreground(tcell.GetColor(t.Body)),
	}
}

// Styles contains pre-built tcell styles for a theme.
type Styles struct {
	Border tcell.Style
	Title  tcell.Style
	Body   tcell.Style
}

// DefaultThemeName is the catalog entry used when no theme is picked.
const DefaultThemeName = "default"

// themeCatalog declares the built-in palettes. "default" reproduces the
// stock ANSI look: a bright white frame around light cyan text.
const themeCatalog = `
[[themes]]
name = "default"
border = "#ffffff" # ANSI 15, bright white
title = "#ffffff"
body = "#00ffff" # ANSI 14, light cyan

[[themes]]
# Nightfox palette: https://github.com/EdenEast/nightfox.nvim
name = "nightfox"
border = "#719cd6" # blue
title = "#cdcecf" # fg1
body = "#63cdcf" # cyan

[[themes]]
# Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
name = "kanagawa"
border = "#7e9cd8" # crystalBlue
title = "#dcd7ba" # fujiWhite
body = "#7fb4ca" # springBlue
`

var (
	themes     map[string]Theme
	themeOrder []string
)

func init() {
	var catalog struct {
		Themes []Theme `toml:"themes"`
	}
	if err := toml.Unmarshal([]byte(themeCatalog), &catalog); err != nil {
		panic(fmt.Sprintf("ui: theme catalog: %v", err))
	}
	themes = make(map[string]Theme, len(catalog.Themes))
	for _, t := range catalog.Themes {
		themes[t.Name] = t
		themeOrder = append(themeOrder, t.Name)
	}
}

// LookupTheme returns the named theme from the built-in catalog. An empty
// name resolves to the default.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return themes[DefaultThemeName]
}

// ThemeNames returns the catalog names in declaration order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}
