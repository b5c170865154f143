package marionette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme lists the editor colors as hex strings ("#rrggbb").
type Theme struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	TextMuted  string `yaml:"text_muted"`
	Accent     string `yaml:"accent"`
	Grid       string `yaml:"grid"`
	Widget     string `yaml:"widget"`
	Component  string `yaml:"component"`
	Track      string `yaml:"track"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: "#000000",
		Text:       "#ffffff",
		TextMuted:  "#808080",
		Accent:     "#00ff00",
		Grid:       "#323232",
		Widget:     "#323232",
		Component:  "#646464",
		Track:      "#808080",
	}
}

// Palette is a parsed Theme.
type Palette struct {
	Background Color
	Text       Color
	TextMuted  Color
	Accent     Color
	Grid       Color
	Widget     Color
	Component  Color
	Track      Color
}

// Palette parses every theme color.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"background", t.Background, &p.Background},
		{"text", t.Text, &p.Text},
		{"text_muted", t.TextMuted, &p.TextMuted},
		{"accent", t.Accent, &p.Accent},
		{"grid", t.Grid, &p.Grid},
		{"widget", t.Widget, &p.Widget},
		{"component", t.Component, &p.Component},
		{"track", t.Track, &p.Track},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return p, nil
}

// Blend mixes c toward o by t in CIE-L*a*b* space. Alpha is interpolated
// linearly.
func (c Color) Blend(o Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: o.R, G: o.G, B: o.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (o.A-c.A)*t}
}
