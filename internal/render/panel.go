package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/rook-computer/artwork/internal/render/layout"
)

// PlaceScreenshot composites shot into a rounded, bordered panel occupying box on base,
// with a drop shadow underneath. The result has base's bounds and no transparency.
func PlaceScreenshot(base image.Image, shot image.Image, box image.Rectangle, style PanelStyle) *image.RGBA {
	box = layout.Normalize(box)
	panelW, panelH := box.Dx(), box.Dy()

	panel := Panel(panelW, panelH, style)
	interior := layout.Inset(image.Rect(0, 0, panelW, panelH), style.Padding)
	if !interior.Empty() {
		inner := Letterbox(shot, interior.Dx(), interior.Dy(), style.Backdrop)
		panel = imaging.Paste(panel, inner, interior.Min)
	}

	shadow := Shadow(panelW, panelH, style)

	canvas := imaging.Clone(base)
	origin := base.Bounds().Min
	shadowAt := box.Min.Sub(origin).Add(image.Pt(-style.ShadowOffset, style.ShadowOffset))
	canvas = imaging.Overlay(canvas, shadow, shadowAt, 1.0)
	canvas = imaging.Overlay(canvas, panel, box.Min.Sub(origin), 1.0)
	return Flatten(canvas)
}

// Panel draws the translucent rounded rectangle with its border.
func Panel(width, height int, style PanelStyle) *image.NRGBA {
	dc := gg.NewContext(width, height)
	inset := style.BorderWidth / 2
	dc.DrawRoundedRectangle(inset, inset, float64(width)-style.BorderWidth, float64(height)-style.BorderWidth, style.CornerRadius)
	dc.SetColor(style.Fill)
	dc.FillPreserve()
	dc.SetColor(style.Border)
	dc.SetLineWidth(style.BorderWidth)
	dc.Stroke()
	return imaging.Clone(dc.Image())
}

// Letterbox scales shot down to fit width x height, never up, and centers it on an opaque
// backdrop of exactly that size. The shot's alpha channel is discarded first, so
// transparent pixels keep their stored color instead of punching through the backdrop.
func Letterbox(shot image.Image, width, height int, backdrop color.NRGBA) *image.NRGBA {
	inner := imaging.New(width, height, backdrop)
	fitted := imaging.Fit(opaque(imaging.Clone(shot)), width, height, imaging.Lanczos)
	offset := image.Pt((width-fitted.Bounds().Dx())/2, (height-fitted.Bounds().Dy())/2)
	return imaging.Paste(inner, fitted, offset)
}

// Shadow is the blurred silhouette composited under a panel of the given size.
func Shadow(panelW, panelH int, style PanelStyle) *image.NRGBA {
	dc := gg.NewContext(panelW+style.ShadowGrow, panelH+style.ShadowGrow)
	inset := float64(style.ShadowInset)
	dc.DrawRoundedRectangle(inset, inset, float64(panelW+2)-inset, float64(panelH+2)-inset, style.CornerRadius+4)
	dc.SetColor(style.Shadow)
	dc.Fill()
	return imaging.Blur(dc.Image(), style.ShadowBlur)
}

// Flatten drops transparency by compositing img over opaque black.
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}
