package preview

import (
	"context"
	"image"
	"image/color"
	"time"

	fb "github.com/gonutz/framebuffer"
)

// Previewer shows rendered pages somewhere other than disk.
type Previewer interface {
	Show(ctx context.Context, img image.Image) error
	Close() error
}

type NoopPreviewer struct{}

func (NoopPreviewer) Show(ctx context.Context, img image.Image) error { return nil }
func (NoopPreviewer) Close() error                                    { return nil }

// Target is the pixel sink a page is blitted onto.
type Target interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// FramebufferPreviewer draws each page full-screen on a Linux framebuffer and holds it
// for Delay before returning.
type FramebufferPreviewer struct {
	Delay time.Duration

	dev *fb.Device
}

// OpenFramebuffer opens the framebuffer device at path, e.g. /dev/fb0.
func OpenFramebuffer(path string, delay time.Duration) (*FramebufferPreviewer, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return &FramebufferPreviewer{Delay: delay, dev: dev}, nil
}

func (p *FramebufferPreviewer) Show(ctx context.Context, img image.Image) error {
	if p.dev == nil {
		return nil
	}
	Blit(p.dev, img)
	if p.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *FramebufferPreviewer) Close() error {
	if p.dev == nil {
		return nil
	}
	p.dev.Close()
	p.dev = nil
	return nil
}

// Blit nearest-neighbour scales img onto the whole of dst. Pixels are written opaque.
func Blit(dst Target, img image.Image) {
	bounds := dst.Bounds()
	dstWidth := bounds.Dx()
	dstHeight := bounds.Dy()
	src := img.Bounds()
	if dstWidth <= 0 || dstHeight <= 0 || src.Empty() {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := src.Min.Y + (y*src.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Min.X + (x*src.Dx())/dstWidth
			pixel := color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
