package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// sizeStep is how much the fitter shrinks the font between attempts.
const sizeStep = 2

// TextBlock describes a box of wrapped text and the font size range to fit it with.
type TextBlock struct {
	Text        string
	Origin      image.Point
	MaxWidth    int
	MaxHeight   int
	StartSize   int
	MinSize     int
	Color       color.Color
	LineSpacing int
}

// FitResult reports what FitAndDraw drew.
type FitResult struct {
	// NextY is the y coordinate after the last drawn line and its trailing spacing.
	NextY int
	Size  int
	Lines []string
	// Drawn counts lines actually painted; less than len(Lines) when Truncated.
	Drawn      int
	Truncated  bool
	LineHeight int
	Font       FontOutcome
}

// TextWidth is the advance width of text in whole pixels.
func TextWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

// LineHeight is the distance from the top of a line to the bottom of "Ag".
func LineHeight(face font.Face) int {
	ascent := face.Metrics().Ascent.Ceil()
	bounds, _ := font.BoundString(face, "Ag")
	descent := bounds.Max.Y.Ceil()
	if descent < 0 {
		descent = 0
	}
	return ascent + descent
}

// WrapLines splits text on whitespace and greedily packs words into lines no wider than
// maxWidth. A word wider than maxWidth still gets a line of its own.
func WrapLines(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	lines := []string{}
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || TextWidth(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// BlockHeight is the height of n lines separated by spacing.
func BlockHeight(lines, lineHeight, spacing int) int {
	if lines <= 0 {
		return 0
	}
	return lines*lineHeight + (lines-1)*spacing
}

// DrawText draws a single line with its top-left corner at pt.
func DrawText(dst draw.Image, face font.Face, text string, pt image.Point, c color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// FitAndDraw draws block.Text at the largest size in [MinSize, StartSize] whose wrapped
// block fits MaxHeight. When no size fits, it draws at MinSize and drops the lines that
// would cross the bottom of the box.
func FitAndDraw(dst draw.Image, loader *FontLoader, block TextBlock) FitResult {
	for size := block.StartSize; size >= block.MinSize; size -= sizeStep {
		loaded := loader.Load(float64(size))
		lines := WrapLines(loaded.Face, block.Text, block.MaxWidth)
		lineHeight := LineHeight(loaded.Face)
		if BlockHeight(len(lines), lineHeight, block.LineSpacing) <= block.MaxHeight {
			result := drawLines(dst, loaded, lines, lineHeight, block, false)
			result.Size = size
			_ = loaded.Face.Close()
			return result
		}
		_ = loaded.Face.Close()
	}

	loaded := loader.Load(float64(block.MinSize))
	defer loaded.Face.Close()
	lines := WrapLines(loaded.Face, block.Text, block.MaxWidth)
	result := drawLines(dst, loaded, lines, LineHeight(loaded.Face), block, true)
	result.Size = block.MinSize
	return result
}

func drawLines(dst draw.Image, loaded FontResult, lines []string, lineHeight int, block TextBlock, clip bool) FitResult {
	result := FitResult{Lines: lines, LineHeight: lineHeight, Font: loaded.Outcome}
	bottom := block.Origin.Y + block.MaxHeight
	cursorY := block.Origin.Y
	for _, line := range lines {
		if clip && cursorY+lineHeight > bottom {
			result.Truncated = true
			break
		}
		DrawText(dst, loaded.Face, line, image.Pt(block.Origin.X, cursorY), block.Color)
		result.Drawn++
		cursorY += lineHeight + block.LineSpacing
	}
	result.NextY = cursorY
	return result
}
