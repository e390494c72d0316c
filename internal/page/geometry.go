package page

import (
	"image"
	"image/color"

	"github.com/rook-computer/artwork/internal/render/layout"
)

// Geometry is the page layout for one canvas size. The text column sits on the left;
// the screenshot panel fills most of the right side.
type Geometry struct {
	Bounds image.Rectangle

	Eyebrow      image.Point
	EyebrowSize  int
	EyebrowColor color.NRGBA

	// Column is the full text column; Title and Subtitle boxes start inside it.
	Column image.Rectangle

	TitleTop        int
	TitleMaxHeight  int
	TitleSizes      [2]int // start, min
	TitleColor      color.NRGBA
	SubtitleGap     int
	SubtitleMaxH    int
	SubtitleSizes   [2]int
	SubtitleColor   color.NRGBA
	LineSpacing     int
	QRGap           int
	QRSize          int
	QRCornerRadius  float64
	ScreenshotPanel image.Rectangle
}

// NewGeometry lays out a width x height page.
func NewGeometry(width, height int) Geometry {
	bounds := image.Rect(0, 0, width, height)
	// Width is int(0.39w) from the left edge, not int(0.44w) - int(0.05w).
	column := layout.Relative(bounds, 0.05, 0.24, 0.05, 0.9)
	column.Max.X = column.Min.X + int(float64(width)*0.39)
	return Geometry{
		Bounds: bounds,

		Eyebrow:      image.Pt(column.Min.X, int(float64(height)*0.18)),
		EyebrowSize:  34,
		EyebrowColor: color.NRGBA{R: 170, G: 194, B: 255, A: 0xFF},

		Column: column,

		TitleTop:       column.Min.Y,
		TitleMaxHeight: 120,
		TitleSizes:     [2]int{68, 50},
		TitleColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 0xFF},
		SubtitleGap:    18,
		SubtitleMaxH:   130,
		SubtitleSizes:  [2]int{32, 24},
		SubtitleColor:  color.NRGBA{R: 188, G: 208, B: 248, A: 0xFF},
		LineSpacing:    6,
		QRGap:          24,
		QRSize:         int(float64(height) * 0.16),
		QRCornerRadius: 14,

		ScreenshotPanel: layout.Relative(bounds, 0.45, 0.1, 0.98, 0.9),
	}
}
