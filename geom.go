package pagebreak

import "math"

// Rect is an axis-aligned rectangle in layout coordinates: positioned by its
// top-left corner, with Y increasing downward.
type Rect struct {
	Left, Top, Width, Height float64
}

// Centroid returns the floor-truncated geometric center of the rectangle.
func (r Rect) Centroid() (x, y float64) {
	return CornerToCentroid(r.Left, r.Top, r.Width, r.Height)
}

// CornerToCentroid converts a top-left corner position to a centroid position
// for a box of the given dimensions. Results are floor-truncated to whole
// units, matching the layout side's integer pixel positions.
func CornerToCentroid(left, top, w, h float64) (x, y float64) {
	return math.Floor(left + w/2), math.Floor(top + h/2)
}

// CentroidToCorner converts a centroid position back to a top-left corner
// position for a box of the given dimensions, floor-truncated.
//
// CentroidToCorner and CornerToCentroid are inverses only up to the floor
// truncation: round-tripping an odd-sized box drifts by at most one unit.
// That tolerance is part of the contract; callers must not expect exact
// inversion.
func CentroidToCorner(x, y, w, h float64) (left, top float64) {
	return math.Floor(x - w/2), math.Floor(y - h/2)
}
