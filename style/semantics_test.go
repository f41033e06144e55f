package style

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHexColorToTcellParsesSixDigitHex(t *testing.T) {
	want := tcell.NewRGBColor(0xcb, 0xa6, 0xf7)
	if got := HexColor("#cba6f7").ToTcell(); got != want {
		t.Fatalf("ToTcell(#cba6f7) = %v, want %v", got, want)
	}
}

func TestHexColorToTcellRejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{"", "#fff", "not-a-color", "#gggggg"} {
		if got := HexColor(bad).ToTcell(); got != tcell.ColorDefault {
			t.Fatalf("ToTcell(%q) = %v, want ColorDefault", bad, got)
		}
	}
}

func TestThemeColorResolvesPaletteReference(t *testing.T) {
	theme := DefaultTheme()
	want := Mocha["mauve"].ToTcell()
	if got := theme.Color("@mauve"); got != want {
		t.Fatalf("Color(@mauve) = %v, want %v", got, want)
	}
}

func TestThemeColorResolvesSemanticIndirection(t *testing.T) {
	theme := DefaultTheme()
	// border.active -> accent -> @mauve
	want := Mocha["mauve"].ToTcell()
	if got := theme.Color("border.active"); got != want {
		t.Fatalf("Color(border.active) = %v, want %v", got, want)
	}
}

func TestThemeColorLiteralHexBypassesSemantics(t *testing.T) {
	theme := DefaultTheme()
	want := HexColor("#123456").ToTcell()
	if got := theme.Color("#123456"); got != want {
		t.Fatalf("Color(#123456) = %v, want %v", got, want)
	}
}

func TestThemeColorUnknownKeyReturnsDefault(t *testing.T) {
	theme := DefaultTheme()
	if got := theme.Color("nonexistent.key"); got != tcell.ColorDefault {
		t.Fatalf("Color(nonexistent.key) = %v, want ColorDefault", got)
	}
}

func TestThemeColorIndirectionDepthLimitReturnsDefault(t *testing.T) {
	theme := Theme{
		Palette: Mocha,
		Semantics: Semantics{
			"a": "b",
			"b": "a",
		},
	}
	if got := theme.Color("a"); got != tcell.ColorDefault {
		t.Fatalf("Color(a) with a cyclic semantic chain = %v, want ColorDefault", got)
	}
}
