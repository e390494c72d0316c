package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	// Built literally: image.Rect would swap inverted corners instead of reporting them.
	out := image.Rectangle{
		Min: image.Pt(rect.Min.X+paddingPx, rect.Min.Y+paddingPx),
		Max: image.Pt(rect.Max.X-paddingPx, rect.Max.Y-paddingPx),
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		return image.Rectangle{Min: out.Min, Max: out.Min}
	}
	return out
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Relative maps fractional coordinates onto bounds, truncating toward zero.
// x1, x2 are fractions of the width; y1, y2 of the height.
func Relative(bounds image.Rectangle, x1, y1, x2, y2 float64) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return image.Rect(
		bounds.Min.X+int(w*x1),
		bounds.Min.Y+int(h*y1),
		bounds.Min.X+int(w*x2),
		bounds.Min.Y+int(h*y2),
	)
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}
