package page

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rook-computer/artwork/internal/feature"
	"github.com/rook-computer/artwork/internal/render"
	"golang.org/x/image/font/gofont/gobold"
)

type recordingLogger struct{ warnings []string }

func (l *recordingLogger) Infof(component, format string, args ...interface{})  {}
func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {}
func (l *recordingLogger) Warnf(component, format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}

func testComposer(width, height int) *Composer {
	fonts := render.NewFontLoader([]render.FontSource{{Name: "go-bold", Data: gobold.TTF}})
	return NewComposer(width, height, fonts)
}

var sampleSpec = feature.Spec{
	OutputName: "out.png",
	SourceName: "in.png",
	Eyebrow:    "TINY CLIPS",
	Title:      "Quick Menu Bar Access",
	Subtitle:   "Start screenshots, video, and GIF in one click",
}

func TestComposeKeepsPageSize(t *testing.T) {
	shot := imaging.New(1200, 800, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	img, report, err := testComposer(1440, 900).Compose(sampleSpec, shot)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 1440, 900) {
		t.Fatalf("bounds = %v, want 1440x900", b)
	}
	if !img.Opaque() {
		t.Fatal("page is not opaque")
	}
	if report.Title.Drawn == 0 || report.Subtitle.Drawn == 0 {
		t.Fatalf("report = %+v, want title and subtitle drawn", report)
	}
}

func TestComposeSubtitleFollowsTitle(t *testing.T) {
	shot := imaging.New(100, 100, color.NRGBA{A: 255})
	geo := NewGeometry(720, 450)
	_, report, err := testComposer(720, 450).Compose(sampleSpec, shot)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if report.Title.NextY <= geo.TitleTop {
		t.Fatalf("title NextY %d not below title top %d", report.Title.NextY, geo.TitleTop)
	}
	wantSubtitleTop := report.Title.NextY + geo.SubtitleGap
	if report.Subtitle.NextY <= wantSubtitleTop {
		t.Fatalf("subtitle NextY %d, want below %d", report.Subtitle.NextY, wantSubtitleTop)
	}
}

func TestComposeDrawsQRCodeWhenLinked(t *testing.T) {
	spec := sampleSpec
	spec.Link = "https://apps.apple.com/app/tiny-clips"
	shot := imaging.New(300, 200, color.NRGBA{A: 255})
	_, report, err := testComposer(1440, 900).Compose(spec, shot)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !report.QRCode {
		t.Fatal("expected qr code on a linked feature")
	}
}

func TestComposeWarnsOnTruncation(t *testing.T) {
	spec := sampleSpec
	spec.Subtitle = "This subtitle keeps going with many more words than could ever fit inside the small box that the page gives to subtitle copy"
	logger := &recordingLogger{}
	composer := testComposer(720, 450)
	composer.Logger = logger
	_, report, err := composer.Compose(spec, imaging.New(10, 10, color.NRGBA{A: 255}))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !report.Subtitle.Truncated {
		t.Fatalf("subtitle not truncated: %+v", report.Subtitle)
	}
	if len(logger.warnings) == 0 {
		t.Fatal("truncation was not logged")
	}
}

func TestComposeRejectsBadInput(t *testing.T) {
	if _, _, err := testComposer(0, 900).Compose(sampleSpec, imaging.New(1, 1, color.Black)); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, _, err := testComposer(100, 100).Compose(sampleSpec, nil); err == nil {
		t.Fatal("expected error for missing screenshot")
	}
}

func TestGeometryMatchesLayout(t *testing.T) {
	geo := NewGeometry(1440, 900)
	if geo.Column.Min.X != 72 || geo.Column.Dx() != 561 {
		t.Fatalf("column = %v, want x=72 width=561", geo.Column)
	}
	if geo.TitleTop != 216 || geo.Eyebrow != image.Pt(72, 162) {
		t.Fatalf("title top %d eyebrow %v", geo.TitleTop, geo.Eyebrow)
	}
	if geo.ScreenshotPanel != image.Rect(648, 90, 1411, 810) {
		t.Fatalf("panel = %v", geo.ScreenshotPanel)
	}
}

func TestGeometryColumnWidthIsFractionOfPage(t *testing.T) {
	for _, width := range []int{305, 720, 1234, 1440, 2880} {
		geo := NewGeometry(width, 900)
		if want := int(float64(width) * 0.39); geo.Column.Dx() != want {
			t.Errorf("width %d: column width = %d, want %d", width, geo.Column.Dx(), want)
		}
		if want := int(float64(width) * 0.05); geo.Column.Min.X != want {
			t.Errorf("width %d: column left = %d, want %d", width, geo.Column.Min.X, want)
		}
	}
}
