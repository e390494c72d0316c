package render

import "image/color"

// Palette holds the colors shared by the background and panel renderers.
type Palette struct {
	// Vertical gradient endpoints, top to bottom.
	GradientTop    color.NRGBA
	GradientBottom color.NRGBA

	Glows []Glow
}

// Glow is a soft colored circle painted over the gradient.
// Position and radius are fractions of the canvas; X of the width, Y and Radius of the height.
type Glow struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
}

// DefaultPalette is the dark navy gradient with a blue glow top right and a violet glow
// bottom left.
var DefaultPalette = Palette{
	GradientTop:    color.NRGBA{R: 8, G: 12, B: 22, A: 0xFF},
	GradientBottom: color.NRGBA{R: 22, G: 28, B: 48, A: 0xFF},
	Glows: []Glow{
		{X: 0.83, Y: 0.16, Radius: 0.3, Color: color.NRGBA{R: 72, G: 140, B: 255, A: 90}},
		{X: 0.2, Y: 0.88, Radius: 0.33, Color: color.NRGBA{R: 122, G: 86, B: 255, A: 78}},
	},
}

// PanelStyle describes the screenshot panel.
type PanelStyle struct {
	Fill     color.NRGBA
	Border   color.NRGBA
	Backdrop color.NRGBA
	Shadow   color.NRGBA

	BorderWidth  float64
	CornerRadius float64
	Padding      int

	// Shadow geometry, in pixels relative to the panel.
	ShadowGrow   int
	ShadowInset  int
	ShadowBlur   float64
	ShadowOffset int
}

// DefaultPanelStyle is the translucent dark panel with a light blue border.
var DefaultPanelStyle = PanelStyle{
	Fill:     color.NRGBA{R: 18, G: 24, B: 42, A: 226},
	Border:   color.NRGBA{R: 126, G: 152, B: 220, A: 185},
	Backdrop: color.NRGBA{R: 8, G: 12, B: 22, A: 0xFF},
	Shadow:   color.NRGBA{R: 0, G: 0, B: 0, A: 160},

	BorderWidth:  2,
	CornerRadius: 28,
	Padding:      20,

	ShadowGrow:   34,
	ShadowInset:  16,
	ShadowBlur:   12,
	ShadowOffset: 10,
}
