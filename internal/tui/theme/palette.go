package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the lipgloss colors of a Theme plus the shades derived
// from it for range and block backgrounds.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Range       lipgloss.Color
	Event       lipgloss.Color
	Weekend     lipgloss.Color
	Disabled    lipgloss.Color
	Warning     lipgloss.Color

	// Behind the days between two range endpoints.
	RangeBg      lipgloss.Color
	RangeFadedBg lipgloss.Color
	// Behind the inner days of the selected multi-range block.
	BlockBg lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnRange   lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnCursor  lipgloss.Color
}

// Shade parameters. Dark themes scale the range color towards black with a
// brightness floor; light themes wash it towards the background.
const (
	rangeScale = 0.50
	rangeFloor = 40
	fadedScale = 0.30
	fadedFloor = 30

	rangeWash = 0.75
	fadedWash = 0.88

	lightThreshold = 0.55
)

// NewPalette derives a Palette from t. A nil theme uses mocha.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	var rangeBg, fadedBg string
	light := isLightTheme(t.Bg)
	if light {
		rangeBg = blend(t.Range, t.Bg, rangeWash)
		fadedBg = blend(t.Range, t.Bg, fadedWash)
	} else {
		rangeBg = scaled(t.Range, rangeScale, rangeFloor)
		fadedBg = scaled(t.Range, fadedScale, fadedFloor)
	}

	return &Palette{
		Bg:          Color(t.Bg),
		BgHighlight: Color(t.BgHighlight),
		BgSelection: Color(t.BgSelection),
		Fg:          Color(t.Fg),
		FgMuted:     Color(t.FgMuted),
		Accent:      Color(t.Accent),
		Today:       Color(t.Today),
		Range:       Color(t.Range),
		Event:       Color(t.Event),
		Weekend:     Color(t.Weekend),
		Disabled:    Color(t.Disabled),
		Warning:     Color(t.Warning),

		RangeBg:      Color(rangeBg),
		RangeFadedBg: Color(fadedBg),
		BlockBg:      Color(blockShade(rangeBg, light)),

		TextOnAccent:  Color(readableOn(t.Accent, t.Bg, t.Fg)),
		TextOnRange:   Color(readableOn(t.Range, t.Bg, t.Fg)),
		TextOnWarning: Color(readableOn(t.Warning, t.Bg, t.Fg)),
		TextOnCursor:  Color(readableOn(t.BgSelection, t.Bg, t.Fg)),
	}
}

func isLightTheme(bg string) bool {
	return luminance(bg) > lightThreshold
}

// scaled multiplies every channel of hex by factor without going below
// floor. Unparseable input is returned unchanged.
func scaled(hex string, factor float64, floor uint8) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	channel := func(v uint8) float64 {
		out := uint8(float64(v) * factor)
		if out < floor {
			out = floor
		}
		return float64(out) / 255
	}
	r, g, b := c.RGB255()
	return colorful.Color{R: channel(r), G: channel(g), B: channel(b)}.Hex()
}

// blend moves from a towards b by ratio (clamped to 0..1) in RGB space.
func blend(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}

// blockShade sets the selected block apart from ordinary range days.
func blockShade(rangeBg string, light bool) string {
	if light {
		return blend(rangeBg, "#000000", 0.10)
	}
	return blend(rangeBg, "#ffffff", 0.30)
}

// readableOn picks whichever of the two text colors contrasts more with bg.
func readableOn(bg, lightText, darkText string) string {
	if contrast(bg, lightText) >= contrast(bg, darkText) {
		return lightText
	}
	return darkText
}

// contrast is the WCAG contrast ratio between two colors.
func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// luminance is the WCAG relative luminance of hex, or 0 if hex does not parse.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
