package preview

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"
)

func TestBlitScalesToTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	left := color.RGBA{R: 255, A: 255}
	right := color.RGBA{B: 128, A: 128}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				src.SetRGBA(x, y, left)
			} else {
				src.SetRGBA(x, y, right)
			}
		}
	}

	dst := image.NewRGBA(image.Rect(10, 10, 18, 14))
	Blit(dst, src)

	if got := dst.RGBAAt(10, 10); got != left {
		t.Fatalf("top-left = %v, want %v", got, left)
	}
	if got := dst.RGBAAt(17, 13); got.B != 128 || got.A != 255 {
		t.Fatalf("bottom-right = %v, want opaque premultiplied blue", got)
	}
}

func TestBlitEmptySource(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Blit(dst, image.NewRGBA(image.Rectangle{}))
	if dst.RGBAAt(0, 0).A != 0 {
		t.Fatal("empty source painted the target")
	}
}

func TestFramebufferPreviewerWithoutDevice(t *testing.T) {
	p := &FramebufferPreviewer{Delay: time.Hour}
	if err := p.Show(context.Background(), image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenFramebufferMissingDevice(t *testing.T) {
	if _, err := OpenFramebuffer("/nonexistent/fb9", time.Second); err == nil {
		t.Fatal("expected error for missing device")
	}
}
