package radarview

import "math"

// LabelMargin is the share of the half-extent the axes may span. The rest
// is left as a border for axis titles.
const LabelMargin = 0.9

// ResolveLayout derives the chart center and radius from the drawing
// surface size. A non-positive (or NaN) dimension yields radius 0, a
// degenerate but valid chart that renders nothing.
func ResolveLayout(width, height float64) (center Point, radius float64) {
	center = Point{X: width / 2, Y: height / 2}
	if !(width > 0) || !(height > 0) {
		return center, 0
	}
	return center, math.Min(width, height) / 2 * LabelMargin
}
