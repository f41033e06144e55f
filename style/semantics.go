package style

import "github.com/gdamore/tcell/v2"

// Semantics maps a semantic name to either a palette reference ("@mauve"),
// a literal hex color, or the name of another semantic key — the same
// three-way resolution the teacher's theme.Config.resolveColorString
// implements, trimmed to the keys this repo's renderer actually needs
// (container borders, the Tabbed/Stacked strip, base text) instead of the
// teacher's full desktop/pane/statusbar/effects surface.
type Semantics map[string]string

// Standard is the default semantic binding set, grounded on the teacher's
// theme.StandardSemantics (texel/theme/semantics.go) and its pane-border
// section in defaults.go, narrowed to what render.Draw needs to color a
// tiling.Tree: focused vs. inactive container borders, the Tabbed/Stacked
// indicator strip, and base text/background.
var Standard = Semantics{
	"accent": "@mauve",

	"bg.base": "@base",
	"bg.tab":  "@mantle",

	"text.primary": "@text",
	"text.muted":   "@overlay0",

	"border.active":   "accent",
	"border.inactive": "@overlay0",
	"border.focus":    "@lavender",

	"tab.active_bg":   "@surface0",
	"tab.active_fg":   "text.primary",
	"tab.inactive_bg": "bg.tab",
	"tab.inactive_fg": "text.muted",
}

// Theme resolves Semantics names to concrete colors against a backing
// Palette, the same two-layer (palette + semantics) design as the
// teacher's theme.Config + theme.CurrentPalette split.
type Theme struct {
	Palette   Palette
	Semantics Semantics
}

// DefaultTheme returns the Mocha palette with the Standard semantic
// bindings, the combination render.Draw uses when the caller supplies no
// override.
func DefaultTheme() Theme {
	return Theme{Palette: Mocha, Semantics: Standard}
}

// Color resolves a semantic key to a tcell.Color. Resolution follows the
// teacher's precedence: a "#RRGGBB" literal is used directly, an "@name"
// reference resolves against the palette, anything else is treated as
// another semantic key, followed through a chain of such keys up to a
// fixed depth (e.g. "border.active -> accent -> @mauve"); a chain that is
// deeper than that, such as a cycle, resolves to tcell.ColorDefault.
// Unknown keys return
// tcell.ColorDefault, never a panic, since a missing theme entry is a
// cosmetic gap, not a core-affecting failure.
func (t Theme) Color(key string) tcell.Color {
	return t.resolve(key, 0)
}

func (t Theme) resolve(key string, depth int) tcell.Color {
	if depth > 5 {
		return tcell.ColorDefault
	}
	if len(key) > 0 && key[0] == '#' {
		return HexColor(key).ToTcell()
	}
	if len(key) > 0 && key[0] == '@' {
		if c, ok := t.Palette[key[1:]]; ok {
			return c.ToTcell()
		}
		return tcell.ColorDefault
	}
	if next, ok := t.Semantics[key]; ok {
		return t.resolve(next, depth+1)
	}
	return tcell.ColorDefault
}
