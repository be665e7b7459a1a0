package pagebreak

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Pointer grab tuning. The error bias corrects 15% of the joint's positional
// error every 1/60th of a second; the max force keeps grabbed bodies from
// tunneling through obstacles when yanked.
const (
	grabRadius    = 5.0
	grabMaxForce  = 50000.0
	grabSmoothing = 0.25
)

// Mouse is the drag constraint attached to a world: a single implicit pointer
// that can grab and drag any dynamic body. Static bodies never grab; there is
// no per-body opt-out.
//
// The cursor is a free-floating kinematic body that is never added to the
// space. Grabbing pins the hit body to it with a pivot joint, and Move drags
// the cursor with velocity so grabbed bodies pick up momentum and can be
// thrown.
type Mouse struct {
	world  *World
	cursor *cp.Body
	joint  *cp.Constraint
}

// AttachMouse creates the drag constraint for a world.
func AttachMouse(w *World) *Mouse {
	return &Mouse{
		world:  w,
		cursor: cp.NewKinematicBody(),
	}
}

// Grab attempts to pick up the body under (x, y). Reports whether a dynamic
// body was hit. Any previous grab is released first.
func (m *Mouse) Grab(x, y float64) bool {
	m.Release()

	point := cp.Vector{X: x, Y: y}
	m.cursor.SetPosition(point)

	info := m.world.space.PointQueryNearest(point, grabRadius, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil || info.Shape.Body().Mass() >= cp.INFINITY {
		return false
	}

	nearest := point
	if info.Distance > 0 {
		nearest = info.Point
	}
	body := info.Shape.Body()

	joint := cp.NewPivotJoint2(m.cursor, body, cp.Vector{}, body.WorldToLocal(nearest))
	joint.SetMaxForce(grabMaxForce)
	joint.SetErrorBias(math.Pow(1.0-0.15, 60.0))
	m.joint = m.world.space.AddConstraint(joint)
	return true
}

// Move tracks the pointer to (x, y). The cursor eases toward the target and
// carries the matching velocity, so a released body keeps the throw's
// momentum. Call once per frame while the pointer is down.
func (m *Mouse) Move(x, y float64) {
	target := cp.Vector{X: x, Y: y}
	next := m.cursor.Position().Lerp(target, grabSmoothing)
	m.cursor.SetVelocityVector(next.Sub(m.cursor.Position()).Mult(60.0))
	m.cursor.SetPosition(next)
}

// Release drops the current grab, if any.
func (m *Mouse) Release() {
	if m.joint == nil {
		return
	}
	m.world.space.RemoveConstraint(m.joint)
	m.joint = nil
	m.cursor.SetVelocityVector(cp.Vector{})
}

// Dragging reports whether a body is currently grabbed.
func (m *Mouse) Dragging() bool {
	return m.joint != nil
}
