package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// glowScale is the downsampling factor used while blurring glows.
const glowScale = 4

// glowBlur is the blur sigma as a fraction of the canvas height.
const glowBlur = 0.08

// Background renders the vertical gradient and paints the palette's glows over it in order.
func Background(width, height int, palette Palette) *image.NRGBA {
	canvas := Gradient(width, height, palette.GradientTop, palette.GradientBottom)
	for _, glow := range palette.Glows {
		canvas = imaging.Overlay(canvas, GlowLayer(width, height, glow), image.Pt(0, 0), 1.0)
	}
	return opaque(canvas)
}

// Gradient fills a canvas row by row, interpolating from top to bottom.
func Gradient(width, height int, top, bottom color.NRGBA) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		t := 0.0
		if height > 1 {
			t = float64(row) / float64(height-1)
		}
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xFF,
		}
		offset := row * canvas.Stride
		for x := 0; x < width; x++ {
			i := offset + x*4
			canvas.Pix[i+0] = c.R
			canvas.Pix[i+1] = c.G
			canvas.Pix[i+2] = c.B
			canvas.Pix[i+3] = c.A
		}
	}
	return canvas
}

// GlowLayer returns a transparent full-canvas layer holding one blurred circle.
// The circle is drawn and blurred at reduced resolution, then scaled back up.
func GlowLayer(width, height int, glow Glow) *image.NRGBA {
	smallW := int(math.Ceil(float64(width) / glowScale))
	smallH := int(math.Ceil(float64(height) / glowScale))
	if smallW < 1 {
		smallW = 1
	}
	if smallH < 1 {
		smallH = 1
	}

	cx := math.Floor(float64(width)*glow.X) / glowScale
	cy := math.Floor(float64(height)*glow.Y) / glowScale
	radius := math.Floor(float64(height)*glow.Radius) / glowScale

	dc := gg.NewContext(smallW, smallH)
	dc.SetColor(glow.Color)
	dc.DrawCircle(cx, cy, radius)
	dc.Fill()

	sigma := math.Floor(float64(height)*glowBlur) / glowScale
	blurred := imaging.Blur(dc.Image(), sigma)
	return imaging.Resize(blurred, width, height, imaging.Linear)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// opaque forces every pixel's alpha to 255, keeping the color channels.
func opaque(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}
