// Package style is the ambient presentation plumbing the demo renderer
// uses to color a tiling.Tree. It is not part of the tiling core (spec.md
// §1: "rendering decorations" is a Non-goal); SPEC_FULL.md §1.1 calls it
// out as a small semantic color/theme resolver, grounded on the teacher's
// texel/theme package (theme/palette.go, theme/semantics.go) but trimmed
// to what a terminal demo needs: no embedded per-user palette files, no
// live palette switching.
package style

import "github.com/gdamore/tcell/v2"

// HexColor mirrors the teacher's theme.HexColor: a "#RRGGBB" string that
// converts to a tcell.Color, with ColorDefault as the failure value.
type HexColor string

// ToTcell converts a HexColor to a tcell.Color, or tcell.ColorDefault if
// hc is not a well-formed 6-digit hex string.
func (hc HexColor) ToTcell() tcell.Color {
	s := string(hc)
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return tcell.ColorDefault
	}
	var r, g, b int
	for i, c := range []*int{&r, &g, &b} {
		v, ok := hexByte(s[i*2 : i*2+2])
		if !ok {
			return tcell.ColorDefault
		}
		*c = v
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func hexByte(s string) (int, bool) {
	v := 0
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// Palette is a named set of base colors, the same shape as the teacher's
// theme.Palette. Mocha is the one palette this package ships, matching the
// Catppuccin Mocha values the teacher's embedded palettes/mocha.json uses
// for the same color names.
type Palette map[string]HexColor

// Mocha is the default palette, lifted from the same Catppuccin values the
// teacher's StandardSemantics comments reference.
var Mocha = Palette{
	"base":     "#1e1e2e",
	"mantle":   "#181825",
	"crust":    "#11111b",
	"surface0": "#313244",
	"surface2": "#585b70",
	"text":     "#cdd6f4",
	"subtext1": "#bac2de",
	"overlay0": "#6c7086",
	"mauve":    "#cba6f7",
	"lavender": "#b4befe",
	"green":    "#a6e3a1",
	"yellow":   "#f9e2af",
	"red":      "#f38ba8",
	"rosewater": "#f5e0dc",
}
