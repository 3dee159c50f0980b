package facematch

import "image"

// labelOffset is how far above the box the label baseline sits
const labelOffset = 10

// ScaleRect maps a box found in a downscaled frame back onto the full frame.
func ScaleRect(r image.Rectangle, factor int) image.Rectangle {
	if factor <= 1 {
		return r
	}
	return image.Rect(r.Min.X*factor, r.Min.Y*factor, r.Max.X*factor, r.Max.Y*factor)
}

// LabelOrigin returns where a box's label should be drawn: just above its top-left corner.
func LabelOrigin(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X, r.Min.Y-labelOffset)
}
