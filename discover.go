package pagebreak

import (
	"fmt"
	"math"
)

// BodySpec describes one physics body to build: centroid position,
// dimensions, whether it is immovable, and the element its motion drives.
// A nil Element means the body participates in physics but never writes
// visual state.
type BodySpec struct {
	X, Y          float64
	Width, Height float64
	Static        bool
	Element       Element
}

// Discover scans the tree for tagged elements and returns their body specs:
// all dynamic-tagged elements in tree order, followed by all static-tagged
// elements in tree order. The ordering is deterministic so runs are
// reproducible; physics does not depend on it.
//
// Elements whose size resolves to NaN (not laid out) are skipped — a box with
// NaN dimensions would poison the whole simulation. An element carrying both
// tags matches both queries and yields two specs; the tag sets are assumed
// disjoint and no deduplication is attempted.
func Discover(tree VisualTree) ([]BodySpec, error) {
	var specs []BodySpec
	for _, q := range []struct {
		tag    string
		static bool
	}{
		{TagDynamic, false},
		{TagStatic, true},
	} {
		elems, err := tree.ElementsByTag(q.tag)
		if err != nil {
			return nil, fmt.Errorf("discover %q elements: %w", q.tag, err)
		}
		for _, el := range elems {
			box := el.Box()
			if math.IsNaN(box.Width) || math.IsNaN(box.Height) {
				continue
			}
			x, y := box.Centroid()
			specs = append(specs, BodySpec{
				X:       x,
				Y:       y,
				Width:   box.Width,
				Height:  box.Height,
				Static:  q.static,
				Element: el,
			})
		}
	}
	return specs, nil
}
