package pagebreak

// Tags recognized by Discover. An element may carry any number of tags; only
// these two make it part of the simulation.
const (
	TagDynamic = "dynamic" // element becomes a moving body
	TagStatic  = "static"  // element becomes an immovable body
)

// PositionAbsolute is the only positioning mode Step writes. It is carried in
// the Style so a host that distinguishes positioning schemes can apply it.
const PositionAbsolute = "absolute"

// Style is the visual state written back to a bound element after each
// simulation step: absolute positioning, floor-truncated corner coordinates,
// and the body's orientation in radians.
type Style struct {
	Position string
	Left     int
	Top      int
	Rotate   float64
}

// Element is a handle to one visual element of the host's tree.
//
// The simulation holds Elements weakly: it never keeps an element alive, and
// an element that has left the tree is free to fail SetStyle, at which point
// the simulation drops its binding and moves on.
type Element interface {
	// Box returns the element's current bounding box in document-relative
	// coordinates, scroll offset included. Width and Height are NaN when the
	// element has not been laid out.
	Box() Rect

	// SetStyle applies the given visual state to the element.
	SetStyle(Style) error
}

// VisualTree is the host facility the simulation reads elements from.
type VisualTree interface {
	// ElementsByTag returns the elements carrying the given tag, in tree
	// order.
	ElementsByTag(tag string) ([]Element, error)
}
