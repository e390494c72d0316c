package page

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rook-computer/artwork/internal/feature"
	"github.com/rook-computer/artwork/internal/render"
	"github.com/rook-computer/artwork/internal/render/layout"
)

// Report describes how a page's text was laid out.
type Report struct {
	Title    render.FitResult
	Subtitle render.FitResult
	QRCode   bool
}

// Composer renders artwork pages of a fixed size.
type Composer struct {
	Width  int
	Height int

	Fonts   *render.FontLoader
	Palette render.Palette
	Panel   render.PanelStyle
	Logger  render.Logger
}

func NewComposer(width, height int, fonts *render.FontLoader) *Composer {
	return &Composer{
		Width:   width,
		Height:  height,
		Fonts:   fonts,
		Palette: render.DefaultPalette,
		Panel:   render.DefaultPanelStyle,
	}
}

// Compose renders spec with shot in the screenshot panel. The returned image is opaque
// and exactly Width x Height.
func (c *Composer) Compose(spec feature.Spec, shot image.Image) (*image.RGBA, Report, error) {
	var report Report
	if c.Width <= 0 || c.Height <= 0 {
		return nil, report, fmt.Errorf("invalid page size %dx%d", c.Width, c.Height)
	}
	if shot == nil {
		return nil, report, fmt.Errorf("%s: no screenshot", spec.OutputName)
	}
	fonts := c.Fonts
	if fonts == nil {
		fonts = render.NewFontLoader(render.DefaultFontCandidates())
	}
	geo := NewGeometry(c.Width, c.Height)

	canvas := render.Background(c.Width, c.Height, c.Palette)

	eyebrow := fonts.Load(float64(geo.EyebrowSize))
	render.DrawText(canvas, eyebrow.Face, spec.Eyebrow, geo.Eyebrow, geo.EyebrowColor)
	_ = eyebrow.Face.Close()

	report.Title = render.FitAndDraw(canvas, fonts, render.TextBlock{
		Text:        spec.Title,
		Origin:      image.Pt(geo.Column.Min.X, geo.TitleTop),
		MaxWidth:    geo.Column.Dx(),
		MaxHeight:   geo.TitleMaxHeight,
		StartSize:   geo.TitleSizes[0],
		MinSize:     geo.TitleSizes[1],
		Color:       geo.TitleColor,
		LineSpacing: geo.LineSpacing,
	})
	c.warnTruncated(spec, "title", report.Title)

	report.Subtitle = render.FitAndDraw(canvas, fonts, render.TextBlock{
		Text:        spec.Subtitle,
		Origin:      image.Pt(geo.Column.Min.X, report.Title.NextY+geo.SubtitleGap),
		MaxWidth:    geo.Column.Dx(),
		MaxHeight:   geo.SubtitleMaxH,
		StartSize:   geo.SubtitleSizes[0],
		MinSize:     geo.SubtitleSizes[1],
		Color:       geo.SubtitleColor,
		LineSpacing: geo.LineSpacing,
	})
	c.warnTruncated(spec, "subtitle", report.Subtitle)

	if spec.Link != "" {
		canvas, report.QRCode = c.placeQRCode(canvas, spec, geo, report.Subtitle.NextY)
	}

	final := render.PlaceScreenshot(canvas, shot, geo.ScreenshotPanel, c.Panel)
	return final, report, nil
}

func (c *Composer) placeQRCode(canvas *image.NRGBA, spec feature.Spec, geo Geometry, textBottom int) (*image.NRGBA, bool) {
	_, free := layout.SplitHorizontal(geo.Column, textBottom-geo.Column.Min.Y+geo.QRGap)
	if free.Dx() < geo.QRSize || free.Dy() < geo.QRSize {
		c.warnf("page", "%s: no room for qr code under subtitle", spec.OutputName)
		return canvas, false
	}
	tile, err := render.QRCodeTile(spec.Link, geo.QRSize, geo.QRCornerRadius)
	if err != nil {
		c.warnf("page", "%s: qr code skipped: %v", spec.OutputName, err)
		return canvas, false
	}
	return imaging.Overlay(canvas, tile, free.Min, 1.0), true
}

func (c *Composer) warnTruncated(spec feature.Spec, field string, result render.FitResult) {
	if !result.Truncated {
		return
	}
	c.warnf("page", "%s: %s truncated at %dpx, dropped %d of %d lines",
		spec.OutputName, field, result.Size, len(result.Lines)-result.Drawn, len(result.Lines))
}

func (c *Composer) warnf(component, format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Warnf(component, format, args...)
	}
}
